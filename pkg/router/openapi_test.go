package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAPI(t *testing.T) {
	router := NewDocRouter("Test API", "API for testing", "1.0.0").
		WithServer("https://api.example.com", "Production server")

	router.Route("GET", "/users", noopHandler).
		WithName("List Users").
		WithDescription("Get all users").
		WithResponse(User{}).
		WithTags("users").
		Register()

	router.Route("POST", "/users", noopHandler).
		WithName("Create User").
		WithDescription("Create a new user").
		WithRequest(CreateUserRequest{}).
		WithResponse(User{}).
		WithErrorResponse("400", "Invalid request", ErrorResponse{},
			Example{
				ContentType: "application/json",
				Value:       `{"code": "invalid_input", "message": "Invalid input"}`,
			}).
		Register()

	router.Route("GET", "/users/{id}", noopHandler).
		WithName("Get User").
		WithResponse(User{}).
		Register()

	spec := router.OpenAPI()

	assert.Equal(t, "3.0.0", spec["openapi"])

	info := spec["info"].(map[string]any)
	assert.Equal(t, "Test API", info["title"])
	assert.Equal(t, "API for testing", info["description"])
	assert.Equal(t, "1.0.0", info["version"])

	servers := spec["servers"].([]any)
	require.Len(t, servers, 1)
	assert.Equal(t, "https://api.example.com", servers[0].(map[string]any)["url"])

	paths := spec["paths"].(map[string]any)
	require.Contains(t, paths, "/users")
	require.Contains(t, paths, "/users/{id}")

	// both methods share the /users path item
	usersItem := paths["/users"].(map[string]any)
	require.Contains(t, usersItem, "get")
	require.Contains(t, usersItem, "post")

	getOp := usersItem["get"].(map[string]any)
	assert.Equal(t, "List Users", getOp["summary"])
	assert.Equal(t, []any{"users"}, getOp["tags"])
	assert.NotContains(t, getOp, "requestBody")

	postOp := usersItem["post"].(map[string]any)
	require.Contains(t, postOp, "requestBody")
	body := postOp["requestBody"].(map[string]any)
	assert.Equal(t, true, body["required"])

	responses := postOp["responses"].(map[string]any)
	require.Contains(t, responses, "200")
	require.Contains(t, responses, "400")

	resp400 := responses["400"].(map[string]any)
	assert.Equal(t, "Invalid request", resp400["description"])
	content := resp400["content"].(map[string]any)["application/json"].(map[string]any)
	assert.Contains(t, content, "schema")
	assert.Contains(t, content, "examples")

	// path parameter documented on the id route
	idOp := paths["/users/{id}"].(map[string]any)["get"].(map[string]any)
	params := idOp["parameters"].([]any)
	require.Len(t, params, 1)
	assert.Equal(t, "id", params[0].(map[string]any)["name"])

	// named types used by routes end up in components
	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	assert.Contains(t, schemas, "User")
	assert.Contains(t, schemas, "CreateUserRequest")
	assert.Contains(t, schemas, "ErrorResponse")
}

func TestExtractPathParams(t *testing.T) {
	tests := map[string]struct {
		path     string
		expected []string
	}{
		"no params": {
			path:     "/users",
			expected: nil,
		},
		"one param": {
			path:     "/users/{id}",
			expected: []string{"id"},
		},
		"multiple params": {
			path:     "/users/{id}/posts/{postId}",
			expected: []string{"id", "postId"},
		},
		"trailing slash": {
			path:     "/users/{id}/",
			expected: []string{"id"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, extractPathParams(tc.path))
		})
	}
}

func TestGeneratePathParameters(t *testing.T) {
	params := []string{"id", "name"}

	result := generatePathParameters(params)

	require.Len(t, result, 2)

	param1 := result[0].(map[string]any)
	assert.Equal(t, "id", param1["name"])
	assert.Equal(t, "path", param1["in"])
	assert.True(t, param1["required"].(bool))

	param2 := result[1].(map[string]any)
	assert.Equal(t, "name", param2["name"])
}

func TestGenerateResponses(t *testing.T) {
	router := NewDocRouter("Test API", "API for testing", "1.0.0")

	route := RouteInfo{
		Method:       "GET",
		Path:         "/test",
		ResponseType: User{},
		Responses: map[string]RouteResponse{
			"400": {
				StatusCode:  "400",
				Description: "Bad Request",
				Schema:      ErrorResponse{},
				Examples: []Example{
					{
						ContentType: "application/json",
						Value:       `{"code":"invalid_input","message":"Invalid input"}`,
					},
				},
			},
			"404": {
				StatusCode:  "404",
				Description: "Not Found",
				Schema:      nil,
			},
		},
	}

	responses := router.generateResponses(route)

	// success response derived from the response type
	require.Contains(t, responses, "200")
	resp200 := responses["200"].(map[string]any)
	assert.Equal(t, "successful operation", resp200["description"])
	assert.Contains(t, resp200, "content")

	// custom response with schema and examples
	require.Contains(t, responses, "400")
	resp400 := responses["400"].(map[string]any)
	assert.Equal(t, "Bad Request", resp400["description"])
	content400 := resp400["content"].(map[string]any)
	jsonContent := content400["application/json"].(map[string]any)
	assert.Contains(t, jsonContent, "examples")

	// response without schema carries no content
	require.Contains(t, responses, "404")
	resp404 := responses["404"].(map[string]any)
	assert.Equal(t, "Not Found", resp404["description"])
	assert.NotContains(t, resp404, "content")
}

func TestGenerateResponsesWithoutResponseType(t *testing.T) {
	router := NewDocRouter("Test API", "API for testing", "1.0.0")

	responses := router.generateResponses(RouteInfo{Method: "GET", Path: "/health"})

	require.Contains(t, responses, "200")
	resp200 := responses["200"].(map[string]any)
	assert.Equal(t, "successful operation", resp200["description"])
	assert.NotContains(t, resp200, "content")
}
