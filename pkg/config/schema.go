package config

// Schema is the JSON schema for validating configuration files
const Schema = `{
    "$schema": "http://json-schema.org/draft-07/schema#",
    "type": "object",
    "properties": {
        "source_dir": {
            "type": "string",
            "description": "Local directory containing the files to deploy",
            "minLength": 1
        },
        "remote_dir": {
            "type": "string",
            "description": "Destination prefix on the board filesystem"
        },
        "exclude": {
            "type": "array",
            "items": {
                "type": "string",
                "minLength": 1
            }
        },
        "max_concurrent_devices": {
            "type": "integer",
            "minimum": 1
        },
        "log_level": {
            "type": "string",
            "enum": ["debug", "info", "warn", "error"]
        },
        "log_format": {
            "type": "string",
            "enum": ["console", "json"]
        },
        "devices": {
            "type": "array",
            "minItems": 1,
            "items": {
                "type": "object",
                "properties": {
                    "name": {
                        "type": "string",
                        "pattern": "^[a-zA-Z0-9_-]+$"
                    },
                    "type": {
                        "type": "string",
                        "enum": ["tool", "mount", "sftp"]
                    },
                    "enabled": {
                        "type": "boolean"
                    },
                    "options": {
                        "type": "object"
                    }
                },
                "required": ["name", "type"]
            }
        }
    },
    "required": ["source_dir", "devices"]
}`
