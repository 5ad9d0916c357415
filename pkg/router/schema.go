package router

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"
)

// schemaRegistry tracks schema definitions to enable reuse
type schemaRegistry struct {
	schemas map[string]map[string]any
}

// newSchemaRegistry creates a new schema registry
func newSchemaRegistry() *schemaRegistry {
	return &schemaRegistry{
		schemas: make(map[string]map[string]any),
	}
}

// register adds a schema to the registry
func (r *schemaRegistry) register(typeName string, schema map[string]any) {
	r.schemas[typeName] = schema
}

// getSchemas returns all registered schemas
func (r *schemaRegistry) getSchemas() map[string]any {
	result := make(map[string]any)
	for name, schema := range r.schemas {
		result[name] = schema
	}
	return result
}

// schemaGenerator handles the conversion of Go types to JSON Schema
type schemaGenerator struct {
	// processed tracks types already processed to detect circular references
	processed map[reflect.Type]bool
}

// newSchemaGenerator creates a new schema generator
func newSchemaGenerator() *schemaGenerator {
	return &schemaGenerator{
		processed: make(map[reflect.Type]bool),
	}
}

// generate converts a Go type to a JSON Schema
func (g *schemaGenerator) generate(t any) map[string]any {
	if t == nil {
		return nil
	}

	typ := reflect.TypeOf(t)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}

	// handle non-struct types
	if typ.Kind() != reflect.Struct {
		return basicTypeSchema(typ.Kind())
	}

	// handle circular references
	if g.processed[typ] {
		return map[string]any{
			"type":        "object",
			"description": "circular reference to " + typ.Name(),
		}
	}

	// mark as processed and process the type
	g.processed[typ] = true
	schema := g.processStruct(typ)
	delete(g.processed, typ)

	return schema
}

// processStruct converts a struct type to a JSON Schema
func (g *schemaGenerator) processStruct(typ reflect.Type) map[string]any {
	properties := make(map[string]any)
	required := []string{}

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)

		// skip unexported fields
		if field.PkgPath != "" {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		// get field name from json tag or field name
		name, isRequired := parseJsonTag(jsonTag, field.Name)
		if isRequired {
			required = append(required, name)
		}

		// process field schema
		fieldSchema := g.processField(field)
		if fieldSchema != nil {
			properties[name] = fieldSchema
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}

	if len(required) > 0 {
		schema["required"] = required
	}

	return schema
}

// parseJsonTag extracts name and required status from a json tag
func parseJsonTag(jsonTag, fieldName string) (string, bool) {
	if jsonTag == "" {
		return fieldName, true
	}

	parts := strings.Split(jsonTag, ",")
	name := parts[0]
	if name == "" {
		name = fieldName
	}

	return name, !slices.Contains(parts[1:], "omitempty")
}

// processField converts a struct field to a JSON Schema
func (g *schemaGenerator) processField(field reflect.StructField) map[string]any {
	fieldType := field.Type
	if fieldType.Kind() == reflect.Ptr {
		fieldType = fieldType.Elem()
	}

	// Check for special types first
	switch {
	case fieldType == reflect.TypeOf(time.Time{}):
		schema := map[string]any{
			"type":   "string",
			"format": "date-time",
		}
		addFieldMetadata(schema, field)
		return schema
	case fieldType == reflect.TypeOf(json.RawMessage{}):
		return map[string]any{
			"type": "object",
		}
	}

	// Then check for basic types
	if schema := basicTypeSchema(fieldType.Kind()); schema != nil {
		addFieldMetadata(schema, field)
		return schema
	}

	// Handle different complex types
	switch fieldType.Kind() {
	case reflect.Struct:
		fieldValue := reflect.New(fieldType).Elem().Interface()
		return g.generate(fieldValue)
	case reflect.Slice, reflect.Array:
		return g.processArrayField(fieldType)
	case reflect.Map:
		return g.processMapField(fieldType)
	default:
		return map[string]any{"type": "object"}
	}
}

// processArrayField handles array and slice fields
func (g *schemaGenerator) processArrayField(fieldType reflect.Type) map[string]any {
	elemType := fieldType.Elem()
	var items map[string]any

	switch {
	case basicTypeSchema(elemType.Kind()) != nil:
		items = basicTypeSchema(elemType.Kind())
	case elemType.Kind() == reflect.Struct:
		elemValue := reflect.New(elemType).Elem().Interface()
		items = g.generate(elemValue)
	default:
		items = map[string]any{"type": "object"}
	}

	return map[string]any{
		"type":  "array",
		"items": items,
	}
}

// processMapField handles map fields
func (g *schemaGenerator) processMapField(fieldType reflect.Type) map[string]any {
	valueType := fieldType.Elem()
	var additionalProperties map[string]any

	switch {
	case basicTypeSchema(valueType.Kind()) != nil:
		additionalProperties = basicTypeSchema(valueType.Kind())
	case valueType.Kind() == reflect.Struct:
		valueObj := reflect.New(valueType).Elem().Interface()
		additionalProperties = g.generate(valueObj)
	default:
		additionalProperties = map[string]any{"type": "object"}
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": additionalProperties,
	}
}

// addFieldMetadata adds documentation from struct tags to a schema
func addFieldMetadata(schema map[string]any, field reflect.StructField) {
	if docTag := field.Tag.Get("doc"); docTag != "" {
		schema["description"] = docTag
	}

	if exampleTag := field.Tag.Get("example"); exampleTag != "" {
		schema["example"] = exampleTag
	}

	if enumTag := field.Tag.Get("enum"); enumTag != "" {
		enums := strings.Split(enumTag, ",")
		schema["enum"] = enums
	}
}

// basicTypeSchema creates a schema for a basic Go type
func basicTypeSchema(kind reflect.Kind) map[string]any {
	switch kind {
	case reflect.Bool:
		return map[string]any{"type": "boolean"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return map[string]any{"type": "integer"}
	case reflect.Float32, reflect.Float64:
		return map[string]any{"type": "number"}
	case reflect.String:
		return map[string]any{"type": "string"}
	default:
		return nil
	}
}

// jsonSchema converts a Go type to a JSON Schema
func jsonSchema(t any) map[string]any {
	return newSchemaGenerator().generate(t)
}

// schemaRef returns a reference to a schema, registering it if necessary.
// Anonymous types fall back to an inline schema.
func (dr *DocRouter) schemaRef(t any) map[string]any {
	if t == nil {
		return nil
	}

	typeName := getTypeName(t)
	if typeName == "" {
		return jsonSchema(t)
	}

	// register the schema if not already registered
	if _, exists := dr.schemaRegistry.schemas[typeName]; !exists {
		dr.schemaRegistry.register(typeName, jsonSchema(t))
	}

	// return a reference to the schema
	return map[string]any{
		"$ref": fmt.Sprintf("#/components/schemas/%s", typeName),
	}
}

// getTypeName extracts the type name from an interface value
func getTypeName(t any) string {
	if t == nil {
		return ""
	}

	typ := reflect.TypeOf(t)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}

	return typ.Name()
}
