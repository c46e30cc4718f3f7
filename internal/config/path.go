package config

const (
	ConfigFileName = "blogtool.yaml"

	MarkdownExt = ".md"

	// Jekyll-style front matter values.
	DefaultLayout = "post"

	// Date layouts for post filenames and front matter timestamps.
	PostDateFormat        = "2006-01-02"
	FrontMatterDateFormat = "2006-01-02 15:04:05 -0700"
)
