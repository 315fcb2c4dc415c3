package render

// RunStyle captures the inline run formatting applied to a paragraph.
type RunStyle struct {
	Bold   bool
	Italic bool
	Size   int // half-points
	Color  string
}

const (
	HeadingColor = "1F2937"
	NameColor    = "111111"
	HeadingSize  = 24
	NameSize     = 32
)

// StyleMap holds the formatting for the elements Docx recognizes in plain text.
var StyleMap = map[string]RunStyle{
	"name": {
		Bold:  true,
		Size:  NameSize,
		Color: NameColor,
	},
	"sectionHeading": {
		Bold:  true,
		Size:  HeadingSize,
		Color: HeadingColor,
	},
	"body": {},
}
