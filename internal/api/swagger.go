package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

const swaggerDocURL = "/swagger/doc.json"

// SwaggerUIHandler returns a handler for Swagger UI backed by the generated docs package.
func SwaggerUIHandler() http.HandlerFunc {
	return httpSwagger.Handler(httpSwagger.URL(swaggerDocURL))
}

// OpenAPISpecHandler returns a handler that redirects to the swagger spec JSON
func OpenAPISpecHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, swaggerDocURL, http.StatusTemporaryRedirect)
	}
}
