/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/flamego/flamego"
	"github.com/flamego/template"
)

// NotFound renders the 404 page.
func NotFound(t template.Template, data template.Data) {
	renderNotFound(t, data)
}

func renderNotFound(t template.Template, data template.Data) {
	setPublicSiteTitle(data)
	t.HTML(http.StatusNotFound, "404")
}

func renderServerError(t template.Template, data template.Data) {
	setPublicSiteTitle(data)
	t.HTML(http.StatusInternalServerError, "500")
}

// Recovery turns a panic in a later handler into the 500 page. It must be
// registered after the templater.
func Recovery() flamego.Handler {
	return func(c flamego.Context, t template.Template, data template.Data) {
		defer func() {
			if r := recover(); r != nil {
				fields := []interface{}{
					"event", "panic",
					"error", fmt.Sprint(r),
					"stack", string(debug.Stack()),
				}
				fields = append(fields, baseRequestFields(c)...)

				requestLogger.Error("panic while serving request", fields...)

				if c.ResponseWriter().Written() {
					return
				}

				renderServerError(t, data)
			}
		}()

		c.Next()
	}
}
