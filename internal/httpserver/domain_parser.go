package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	parserHTTP "collab-command-engine/internal/parser/delivery/http"
)

// setupParserDomain registers the parser domain routes.
//
// The engine itself (date resolver, roster resolver, lexicon, use case)
// is wired in cmd/api and arrives here as a ready handler, since it needs
// configuration the server does not own.
func (srv *HTTPServer) setupParserDomain(ctx context.Context, api *gin.RouterGroup) error {
	// Registers /api/v1/messages/parse
	parserHTTP.RegisterRoutes(api, srv.parserHandler, srv.mw)

	srv.l.Infof(ctx, "Parser domain registered")
	return nil
}
