package loader

import "encoding/xml"

// These types mirror the generic XML tree the loader consumes (per the
// spec, XML ingestion itself is an external collaborator; only the shape of
// the records it delivers is specified). ",any" is used everywhere a child
// element's name must itself be validated rather than silently dropped by
// an exact tag match, so that e.g. a misnamed instruction child surfaces as
// a structural error instead of being ignored.
type xmlProgram struct {
	XMLName  xml.Name
	Language string    `xml:"language,attr"`
	Children []xmlNode `xml:",any"`
}

type xmlNode struct {
	XMLName xml.Name
	Order   string    `xml:"order,attr"`
	Opcode  string    `xml:"opcode,attr"`
	Args    []xmlNode `xml:",any"`
	Type    string    `xml:"type,attr"`
	Text    string    `xml:",chardata"`
}
