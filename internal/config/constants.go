package config

const LanguageName = "zinc"

const Version = "0.2.0"

const SourceFileExt = ".zn"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".zn", ".zinc"}
