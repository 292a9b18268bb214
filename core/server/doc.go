// Package server wraps net/http.Server with graceful shutdown, environment
// configuration and an errgroup-friendly Run method.
//
//	cfg := server.DefaultConfig()
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, router))
//	return g.Wait()
//
// Run returns nil when the context is canceled after a graceful shutdown,
// bounded by the shutdown timeout (SERVER_SHUTDOWN_TIMEOUT, default 30s).
//
// Environment variables read by Config: SERVER_ADDR, SERVER_READ_TIMEOUT,
// SERVER_WRITE_TIMEOUT, SERVER_IDLE_TIMEOUT, SERVER_SHUTDOWN_TIMEOUT and
// SERVER_MAX_HEADER_BYTES.
package server
