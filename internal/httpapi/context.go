package httpapi

import "context"

// serverBaseCtx is canceled when the process starts shutting down. Long polls
// and websocket feeds end when it does. Defaults to Background.
var serverBaseCtx = context.Background()

// SetBaseContext installs the shutdown context; nil restores Background.
func SetBaseContext(ctx context.Context) {
	if ctx == nil {
		serverBaseCtx = context.Background()
		return
	}
	serverBaseCtx = ctx
}

// shuttingDown reports whether the base context has been canceled.
func shuttingDown() bool { return serverBaseCtx.Err() != nil }

// joinContexts derives a context from req that is also canceled when base
// ends. The returned cancel func must be called when the handler returns.
func joinContexts(base, req context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(req)
	stop := context.AfterFunc(base, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}
