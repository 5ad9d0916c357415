package router

import (
	"fmt"
	"strings"
)

// OpenAPI builds an OpenAPI 3.0 specification from the registered routes.
func (dr *DocRouter) OpenAPI() map[string]any {
	spec := map[string]any{
		"openapi": "3.0.0",
		"info": map[string]any{
			"title":       dr.title,
			"description": dr.desc,
			"version":     dr.version,
		},
		"paths": dr.generatePaths(),
	}

	if len(dr.servers) > 0 {
		servers := make([]any, 0, len(dr.servers))
		for _, server := range dr.servers {
			servers = append(servers, map[string]any{
				"url":         server.URL,
				"description": server.Description,
			})
		}
		spec["servers"] = servers
	}

	// generatePaths populates the schema registry as a side effect, so
	// components come last
	spec["components"] = map[string]any{
		"schemas": dr.schemaRegistry.getSchemas(),
	}

	return spec
}

// extractPathParams gets path parameters from a URL path
func extractPathParams(path string) []string {
	var params []string
	parts := strings.Split(path, "/")

	for _, part := range parts {
		if len(part) > 0 && part[0] == '{' && part[len(part)-1] == '}' {
			// Extract the parameter name without braces
			paramName := part[1 : len(part)-1]
			params = append(params, paramName)
		}
	}

	return params
}

// generatePathParameters creates parameter objects for path parameters
func generatePathParameters(params []string) []any {
	var parameters []any

	for _, param := range params {
		parameters = append(parameters, map[string]any{
			"name":     param,
			"in":       "path",
			"required": true,
			"schema": map[string]any{
				"type": "string",
			},
			"description": fmt.Sprintf("%s parameter", param),
		})
	}

	return parameters
}

// generatePaths creates the paths section of the OpenAPI spec
func (dr *DocRouter) generatePaths() map[string]any {
	paths := map[string]any{}

	for _, route := range dr.routes {
		// skip if the path contains regex patterns (not easily mappable to OpenAPI)
		if strings.Contains(route.Path, "^") || strings.Contains(route.Path, "(") {
			continue
		}

		path := route.Path

		// add the path if it doesn't exist
		if _, exists := paths[path]; !exists {
			paths[path] = map[string]any{}
		}

		pathItem := paths[path].(map[string]any)
		method := strings.ToLower(route.Method)

		// Extract path parameters
		pathParams := extractPathParams(path)

		operation := map[string]any{
			"summary":     route.Name,
			"description": route.Description,
			"operationId": fmt.Sprintf("%s_%s", method, strings.ReplaceAll(route.Path, "/", "_")),
			"responses":   dr.generateResponses(route),
		}

		if len(route.Tags) > 0 {
			tags := make([]any, 0, len(route.Tags))
			for _, tag := range route.Tags {
				tags = append(tags, tag)
			}
			operation["tags"] = tags
		}

		// Add path parameters if any exist
		if len(pathParams) > 0 {
			operation["parameters"] = generatePathParameters(pathParams)
		}

		// add request body for POST, PUT, PATCH
		if route.RequestType != nil && (method == "post" || method == "put" || method == "patch") {
			operation["requestBody"] = dr.generateRequestBody(route)
		}

		pathItem[method] = operation
	}

	return paths
}

// generateResponses creates response documentation
func (dr *DocRouter) generateResponses(route RouteInfo) map[string]any {
	responses := map[string]any{}

	// Add custom responses from the route definition
	for statusCode, routeResponse := range route.Responses {
		responseContent := map[string]any{}

		// Add schema if available
		if routeResponse.Schema != nil {
			responseContent["schema"] = dr.schemaRef(routeResponse.Schema)
		}

		// Add examples if available
		if len(routeResponse.Examples) > 0 {
			examples := map[string]any{}
			for _, example := range routeResponse.Examples {
				examples[example.ContentType] = map[string]any{
					"value": example.Value,
				}
			}
			responseContent["examples"] = examples
		}

		// Create response object
		response := map[string]any{
			"description": routeResponse.Description,
		}

		// Add content if we have schema or examples
		if len(responseContent) > 0 {
			response["content"] = map[string]any{
				"application/json": responseContent,
			}
		}

		responses[statusCode] = response
	}

	// Add success response if it wasn't overridden by a custom response
	if _, exists := responses["200"]; !exists {
		if route.ResponseType != nil {
			responses["200"] = map[string]any{
				"description": "successful operation",
				"content": map[string]any{
					"application/json": map[string]any{
						"schema": dr.schemaRef(route.ResponseType),
					},
				},
			}
		} else {
			// generic success response if no type provided
			responses["200"] = map[string]any{
				"description": "successful operation",
			}
		}
	}

	return responses
}

// generateRequestBody creates request body documentation
func (dr *DocRouter) generateRequestBody(route RouteInfo) map[string]any {
	return map[string]any{
		"description": fmt.Sprintf("request body for %s", route.Name),
		"required":    true,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": dr.schemaRef(route.RequestType),
			},
		},
	}
}
