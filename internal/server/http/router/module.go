package router

import (
	"net/http"

	"go.uber.org/fx"
)

// Module provides the gin engine, also as the http.Handler the server mounts.
var Module = fx.Provide(
	fx.Annotate(Setup, fx.As(fx.Self()), fx.As(new(http.Handler))),
)
