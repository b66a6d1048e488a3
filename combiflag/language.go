package combiflag

// Language bundles every string needed to build help text and error
// messages. It is a plain immutable record passed explicitly to the
// functions that need it; the library never reads a global.
type Language struct {
	// InvertPrefix deactivates a flag: "--no-flag".
	InvertPrefix string
	// MetaVar is the default meta-variable shown for value arguments.
	MetaVar string
	// Options heads the option section of generated help text.
	Options string
	// Default labels the default value in help text.
	Default string
	// AllowedValues labels the enumerated value set in help text.
	AllowedValues string

	// Error message labels.
	MissingFlag   string
	MissingValue  string
	ParseFailure  string
	InvalidString string
	UnusedArgs    string

	// Auto-generated help flag.
	HelpDescription string
	HelpLong        string
	HelpShort       string

	// Auto-generated version flag.
	VersionDescription string
	VersionLong        string
	VersionShort       string
}

// German is the German string table.
var German = Language{
	InvertPrefix:       "kein",
	MetaVar:            "WERT",
	Options:            "OPTIONEN",
	Default:            "Standard",
	AllowedValues:      "Erlaubte Werte",
	MissingFlag:        "Fehlende Flag",
	MissingValue:       "Fehlender Wert",
	ParseFailure:       "Parse-Fehler",
	InvalidString:      "Invalider String",
	UnusedArgs:         "Nicht alle Argumente verwendet",
	HelpDescription:    "Zeige diesen Text an.",
	HelpLong:           "hilfe",
	HelpShort:          "h",
	VersionDescription: "Zeige die aktuelle Version an.",
	VersionLong:        "version",
	VersionShort:       "v",
}

// English is the English string table.
var English = Language{
	InvertPrefix:       "no",
	MetaVar:            "VALUE",
	Options:            "OPTIONS",
	Default:            "Default",
	AllowedValues:      "Possible values",
	MissingFlag:        "Missing Flag",
	MissingValue:       "Missing Value",
	ParseFailure:       "Parse Error",
	InvalidString:      "Invalid String",
	UnusedArgs:         "Unused argument(s)",
	HelpDescription:    "Show this text.",
	HelpLong:           "help",
	HelpShort:          "h",
	VersionDescription: "Show the current version.",
	VersionLong:        "version",
	VersionShort:       "v",
}
