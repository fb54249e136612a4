package config

import (
	"encoding/json"

	"go.arcalot.io/lang"
	log "go.arcalot.io/log/v2"
	"go.flow.arcalot.io/pluginsdk/schema"
)

// jsonDefault encodes a default value the way the schema expects it.
func jsonDefault(value any) *string {
	return schema.PointerTo(string(lang.Must2(json.Marshal(value))))
}

func getConfigSchema() *schema.TypedScopeSchema[*Config] {
	return schema.NewTypedScopeSchema[*Config](
		schema.NewStructMappedObjectSchema[*Config](
			"Config",
			map[string]*schema.PropertySchema{
				"log": schema.NewPropertySchema(
					schema.NewRefSchema("LogConfig", nil),
					schema.NewDisplayValue(
						schema.PointerTo("Logging"),
						schema.PointerTo("Logging configuration"),
						nil,
					),
					false,
					nil,
					nil,
					nil,
					jsonDefault(map[string]any{}),
					nil,
				),
				"glue": schema.NewPropertySchema(
					schema.NewListSchema(
						schema.NewStringSchema(schema.IntPointer(1), nil, nil),
						nil,
						nil,
					),
					schema.NewDisplayValue(
						schema.PointerTo("Glue"),
						schema.PointerTo("Ordered code paths to load step definitions from."),
						nil,
					),
					false,
					nil,
					nil,
					nil,
					nil,
					nil,
				),
				"backends": schema.NewPropertySchema(
					schema.NewListSchema(
						schema.NewStringSchema(schema.IntPointer(1), nil, nil),
						nil,
						nil,
					),
					schema.NewDisplayValue(
						schema.PointerTo("Backends"),
						schema.PointerTo("Kinds of the built-in backends to enable. Leave empty to enable all."),
						nil,
					),
					false,
					nil,
					nil,
					nil,
					nil,
					nil,
				),
				"locale": schema.NewPropertySchema(
					schema.NewStringSchema(schema.IntPointer(1), nil, nil),
					schema.NewDisplayValue(
						schema.PointerTo("Locale"),
						schema.PointerTo("BCP 47 language tag to execute steps with."),
						nil,
					),
					false,
					nil,
					nil,
					nil,
					jsonDefault("en"),
					nil,
				),
				"skip_after_failure": schema.NewPropertySchema(
					schema.NewBoolSchema(),
					schema.NewDisplayValue(
						schema.PointerTo("Skip after failure"),
						schema.PointerTo("Skip the remaining steps of a scenario once a step did not pass."),
						nil,
					),
					false,
					nil,
					nil,
					nil,
					jsonDefault(true),
					nil,
				),
			},
		),
		schema.NewStructMappedObjectSchema[log.Config](
			"LogConfig",
			map[string]*schema.PropertySchema{
				"level": schema.NewPropertySchema(
					schema.NewStringEnumSchema(map[string]*schema.DisplayValue{
						string(log.LevelDebug):   {NameValue: schema.PointerTo("Debug")},
						string(log.LevelInfo):    {NameValue: schema.PointerTo("Informational")},
						string(log.LevelWarning): {NameValue: schema.PointerTo("Warnings")},
						string(log.LevelError):   {NameValue: schema.PointerTo("Errors")},
					}),
					schema.NewDisplayValue(
						schema.PointerTo("Log level"),
						schema.PointerTo(
							"Minimum level of log messages to write.",
						),
						nil,
					),
					false,
					nil,
					nil,
					nil,
					jsonDefault(log.LevelInfo),
					nil,
				),
				"destination": schema.NewPropertySchema(
					schema.NewStringEnumSchema(map[string]*schema.DisplayValue{
						string(log.DestinationStdout): {NameValue: schema.PointerTo("Standard output")},
					}),
					schema.NewDisplayValue(
						schema.PointerTo("Log destination"),
						schema.PointerTo(
							"Where the logs should be written to.",
						),
						nil,
					),
					false,
					nil,
					nil,
					nil,
					jsonDefault(log.DestinationStdout),
					nil,
				),
			},
		),
	)
}
