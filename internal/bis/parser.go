package bis

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Attribute names used by the BIS credit dataflows.
const (
	seriesKeyAttr = "BORROWERS_CTY"
	periodAttr    = "TIME_PERIOD"
	valueAttr     = "OBS_VALUE"
)

// ParseObservations converts an SDMX XML payload into a flat sequence of
// observations, one per <Obs> element, in document order. A <Series> without
// a BORROWERS_CTY attribute yields the "Unknown" series key; an <Obs> with a
// missing, empty or non-numeric OBS_VALUE yields a nil value. Only an
// unparsable document is an error, returned as *ParseError.
func ParseObservations(xmlText string) ([]Observation, error) {
	decoder := xml.NewDecoder(strings.NewReader(xmlText))
	decoder.CharsetReader = charsetReader

	var (
		observations []Observation
		currentKey   = UnknownSeriesKey
		sawElement   bool
	)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Err: err}
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		sawElement = true

		switch start.Name.Local {
		case "Series":
			currentKey = attrValue(start, seriesKeyAttr, UnknownSeriesKey)
		case "Obs":
			observations = append(observations, Observation{
				Period:    attrValue(start, periodAttr, ""),
				SeriesKey: currentKey,
				Value:     parseValue(attrValue(start, valueAttr, "")),
			})
		}
	}

	if !sawElement && strings.TrimSpace(xmlText) != "" {
		return nil, &ParseError{Err: fmt.Errorf("document contains no XML elements")}
	}

	return observations, nil
}

// attrValue returns the named attribute from a start element, or fallback
// when absent.
func attrValue(start xml.StartElement, name, fallback string) string {
	for _, attr := range start.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return fallback
}

// parseValue converts an OBS_VALUE attribute to a decimal. Empty and
// non-numeric inputs become nil, never an error; callers handle nulls
// downstream.
func parseValue(raw string) *decimal.Decimal {
	if raw == "" {
		return nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &value
}

// charsetReader decodes non-UTF-8 encoding declarations, which some SDMX
// endpoints still emit.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", charset, err)
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}
