package grpcserver

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/avk-dev/netguard/internal/core"
	api "github.com/avk-dev/netguard/internal/grpc/api"
	"github.com/avk-dev/netguard/internal/logger"
	"google.golang.org/grpc"
)

type AppServer struct {
	server          *grpc.Server
	logger          logger.Logger
	addr            string
	errCh           chan error
	shutdownTimeout time.Duration
}

func Start(screensrv core.ScreeningService, logger logger.Logger, addr string, shutdownTimeout time.Duration) *AppServer {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			loggerInterceptor(logger),
			reqValidatorInterceptor(),
		),
	)
	api.RegisterNetGuardServer(grpcServer, newHandler(screensrv))
	appServer := &AppServer{
		server:          grpcServer,
		logger:          logger,
		addr:            addr,
		errCh:           make(chan error, 1),
		shutdownTimeout: shutdownTimeout,
	}
	appServer.start()
	return appServer
}

func (appServer *AppServer) start() {
	listener, err := net.Listen("tcp", appServer.addr)
	if err != nil {
		appServer.errCh <- err
		return
	}

	appServer.logger.Info(fmt.Sprintf("starting server on %s", listener.Addr().String()))

	go func() {
		appServer.errCh <- appServer.server.Serve(listener)
		close(appServer.errCh)
	}()
}

func (appServer *AppServer) ErrCh() <-chan error {
	return appServer.errCh
}

func (appServer *AppServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), appServer.shutdownTimeout)
	defer cancel()
	return shutdown(ctx, appServer.server)
}

func shutdown(ctx context.Context, server *grpc.Server) error {
	gracefulStopDone := make(chan struct{})
	go func() {
		server.GracefulStop()
		close(gracefulStopDone)
	}()

	select {
	case <-gracefulStopDone:
		return nil
	case <-ctx.Done():
		server.Stop()
		return ctx.Err()
	}
}
