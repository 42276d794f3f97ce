/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package srv

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/go-openapi/loads"
	"github.com/go-openapi/runtime/middleware"
)

//go:embed swagger.json
var swaggerJSON []byte

// LoadSwagger parses and analyzes the embedded API description
func LoadSwagger() (*loads.Document, error) {
	return loads.Analyzed(json.RawMessage(swaggerJSON), "")
}

// swaggerHandler serves /swagger.json and the /docs page, everything else goes to next
func swaggerHandler(doc *loads.Document, next http.Handler) http.Handler {
	h := middleware.Spec("/", doc.Raw(), next)
	return middleware.Redoc(middleware.RedocOpts{
		BasePath: "/",
		Path:     "docs",
		SpecURL:  "/swagger.json",
		Title:    doc.Spec().Info.Title,
	}, h)
}
