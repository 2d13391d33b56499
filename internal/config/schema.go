package config

const configSchemaID = "gjf-config.schema.json"

// configSchema constrains .gjf.yml. Kept deliberately strict: an unknown
// key is almost always a typo that would otherwise be silently ignored.
const configSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"$id": "gjf-config.schema.json",
	"type": "object",
	"properties": {
		"java": {"type": "string", "minLength": 1},
		"jarUrl": {"type": "string", "minLength": 1},
		"fixupUrl": {"type": "string", "minLength": 1},
		"jarPath": {"type": "string"},
		"fixupPath": {"type": "string"},
		"cacheDirs": {
			"type": "array",
			"items": {"type": "string", "minLength": 1}
		},
		"debug": {"type": "boolean"}
	},
	"additionalProperties": false
}`
