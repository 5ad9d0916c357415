// package validate checks the shape of incoming todo payloads against an
// embedded JSON Schema and reports failures per field.
package validate

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/cirocosta/todo-tracker-go/internal/model"
)

//go:embed save_todo.json
var schemaFS embed.FS

var saveTodoSchema = mustCompileSchema("save_todo.json")

func mustCompileSchema(name string) *jsonschema.Schema {
	data, err := schemaFS.ReadFile(name)
	if err != nil {
		panic(fmt.Errorf("read embedded schema %s: %w", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, bytes.NewReader(data)); err != nil {
		panic(fmt.Errorf("add schema resource %s: %w", name, err))
	}

	return compiler.MustCompile(name)
}

// messages for the known field/keyword combinations; anything else falls back
// to the raw schema message
var fieldMessages = map[string]string{
	"title/minLength":   "Title is required.",
	"content/minLength": "Content is required.",
	"tag/minLength":     "Tag is required.",
	"status/enum":       "Invalid status value.",
	"priority/enum":     "Invalid priority value.",
}

// SaveTodo validates a create/update payload. A nil result means the payload
// passed; otherwise the result holds one message per failing field, sorted by
// field name. Status and priority are optional: blank values are treated as
// absent and skip the enum check.
func SaveTodo(req model.SaveTodoRequest) []model.FieldError {
	// blank means absent throughout the system, including whitespace-only
	trimmed := model.SaveTodoRequest{
		Title:    strings.TrimSpace(req.Title),
		Content:  strings.TrimSpace(req.Content),
		Tag:      strings.TrimSpace(req.Tag),
		Status:   strings.TrimSpace(req.Status),
		Priority: strings.TrimSpace(req.Priority),
	}

	// marshal back to JSON so the schema sees exactly what a client sent;
	// omitempty drops blank status/priority on the floor
	data, err := json.Marshal(trimmed)
	if err != nil {
		return []model.FieldError{{Field: "", Message: fmt.Sprintf("marshal payload: %v", err)}}
	}

	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return []model.FieldError{{Field: "", Message: fmt.Sprintf("unmarshal payload: %v", err)}}
	}

	err = saveTodoSchema.Validate(payload)
	if err == nil {
		return nil
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []model.FieldError{{Field: "", Message: err.Error()}}
	}

	byField := make(map[string]model.FieldError)
	collectFieldErrors(ve, byField)

	fields := make([]model.FieldError, 0, len(byField))
	for _, fe := range byField {
		fields = append(fields, fe)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })

	return fields
}

// collectFieldErrors walks the cause tree down to its leaves, one entry per
// field
func collectFieldErrors(err *jsonschema.ValidationError, out map[string]model.FieldError) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		field := fieldFromPointer(err.InstanceLocation)
		message := err.Message
		if friendly, ok := fieldMessages[field+"/"+lastSegment(err.KeywordLocation)]; ok {
			message = friendly
		}
		out[field] = model.FieldError{Field: field, Message: message}
		return
	}

	for _, cause := range err.Causes {
		collectFieldErrors(cause, out)
	}
}

// fieldFromPointer converts a JSON pointer like "/title" to a field name
func fieldFromPointer(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if idx := strings.Index(ptr, "/"); idx >= 0 {
		ptr = ptr[:idx]
	}
	return ptr
}

func lastSegment(ptr string) string {
	if idx := strings.LastIndex(ptr, "/"); idx >= 0 {
		return ptr[idx+1:]
	}
	return ptr
}
