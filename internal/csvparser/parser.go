// =============================================================================
// Deck Splitter - CSV Parser Module
// =============================================================================
//
// This module reads and writes the CSV files on both sides of the split:
// the flat vocabulary export coming in, the per-deck pack files going out,
// and the pack files again when the manifest re-counts them.
//
// FEATURES:
//   - Configurable delimiter (comma, pipe, tab, semicolon, any single rune)
//   - Input encodings via golang.org/x/text (UTF-8 BOM is stripped,
//     invalid UTF-8 is an error)
//   - Strict column counts: a row wider or narrower than the header is an error
//   - Values pass through untouched (no trimming, no normalisation)
//   - Streaming reader for counting rows without holding them
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ginjaninja78/vocab-deck-splitter/internal/config"
	"github.com/ginjaninja78/vocab-deck-splitter/internal/types"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// =============================================================================
// CSV DATA STRUCTURE
// =============================================================================

// CSVData represents a parsed tabular file.
type CSVData struct {
	// Headers contains the column headers in file order.
	Headers []string

	// Records contains the data rows. Every record shares Headers.
	Records []types.Record

	// SourceFile is the path to the source file.
	SourceFile string
}

// RowCount returns the number of data rows (header excluded).
func (d *CSVData) RowCount() int {
	return len(d.Records)
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a CSV file and returns the parsed data.
//
// An empty file yields no headers and no records; it is up to the caller to
// decide whether a missing column is fatal.
func Parse(filePath string, settings config.CSVSettings) (*CSVData, error) {
	parser, err := NewStreamingParser(filePath, settings)
	if err != nil {
		return nil, err
	}
	defer parser.Close()

	data, err := collect(parser)
	if err != nil {
		return nil, err
	}
	data.SourceFile = filePath
	return data, nil
}

// ParseReader parses CSV data from an arbitrary reader.
func ParseReader(r io.Reader, settings config.CSVSettings) (*CSVData, error) {
	parser, err := newStreamingParser(io.NopCloser(r), settings)
	if err != nil {
		return nil, err
	}
	defer parser.Close()

	return collect(parser)
}

func collect(parser *StreamingParser) (*CSVData, error) {
	data := &CSVData{Headers: parser.Headers()}
	for parser.Next() {
		data.Records = append(data.Records, parser.Record())
	}
	if err := parser.Err(); err != nil {
		return nil, err
	}
	return data, nil
}

// CountRows counts the data rows of a CSV file by reading it to the end.
func CountRows(filePath string, settings config.CSVSettings) (int, error) {
	parser, err := NewStreamingParser(filePath, settings)
	if err != nil {
		return 0, err
	}
	defer parser.Close()

	count := 0
	for parser.Next() {
		count++
	}
	if err := parser.Err(); err != nil {
		return 0, err
	}
	return count, nil
}

// =============================================================================
// READER CONFIGURATION
// =============================================================================

// Delimiter resolves a configured delimiter to the rune encoding/csv expects.
func Delimiter(value string) (rune, error) {
	switch value {
	case "":
		return ',', nil
	case "\\t", "tab", "TAB":
		return '\t', nil
	case "pipe", "PIPE":
		return '|', nil
	case "semicolon", "SEMICOLON":
		return ';', nil
	}

	r, size := utf8.DecodeRuneInString(value)
	if size != len(value) {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", value)
	}
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("invalid delimiter %q", value)
	}
	return r, nil
}

// configureReader configures the CSV reader based on the settings.
func configureReader(reader *csv.Reader, settings config.CSVSettings) error {
	comma, err := Delimiter(settings.Delimiter)
	if err != nil {
		return err
	}
	reader.Comma = comma

	// Every row must have as many fields as the header.
	reader.FieldsPerRecord = 0

	reader.LazyQuotes = settings.LazyQuotes
	return nil
}

// decodeInput wraps r so that it yields UTF-8 regardless of the input
// encoding. UTF-8 input is validated rather than repaired, and a leading
// byte order mark is stripped. For other encodings a byte order mark, if
// present, wins over the configured encoding.
func decodeInput(r io.Reader, charset string) (io.Reader, error) {
	name := strings.TrimSpace(charset)
	if name == "" {
		name = "utf-8"
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", charset, err)
	}

	if canonical, _ := htmlindex.Name(enc); canonical == "utf-8" {
		return transform.NewReader(r, transform.Chain(encoding.UTF8Validator, unicode.UTF8BOM.NewDecoder())), nil
	}

	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())), nil
}

// =============================================================================
// STREAMING PARSER
// =============================================================================

// StreamingParser reads a CSV file one row at a time.
//
// USAGE:
//   parser, err := NewStreamingParser(filePath, settings)
//   if err != nil {
//       return err
//   }
//   defer parser.Close()
//
//   for parser.Next() {
//       record := parser.Record()
//       // Process the record...
//   }
//
//   if err := parser.Err(); err != nil {
//       return err
//   }
type StreamingParser struct {
	source  io.Closer
	reader  *csv.Reader
	headers []string
	current types.Record
	err     error
}

// NewStreamingParser opens a CSV file and reads its header row.
func NewStreamingParser(filePath string, settings config.CSVSettings) (*StreamingParser, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	parser, err := newStreamingParser(file, settings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return parser, nil
}

func newStreamingParser(source io.ReadCloser, settings config.CSVSettings) (*StreamingParser, error) {
	decoded, err := decodeInput(bufio.NewReader(source), settings.Encoding)
	if err != nil {
		source.Close()
		return nil, err
	}

	reader := csv.NewReader(decoded)
	if err := configureReader(reader, settings); err != nil {
		source.Close()
		return nil, err
	}

	parser := &StreamingParser{
		source: source,
		reader: reader,
	}

	if err := parser.readHeaders(); err != nil {
		source.Close()
		return nil, err
	}

	return parser, nil
}

// readHeaders reads the header row. An empty file has no headers.
func (p *StreamingParser) readHeaders() error {
	row, err := p.reader.Read()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read header row: %w", err)
	}
	p.headers = row
	return nil
}

// Next advances to the next row. Returns false when there are no more rows
// or an error occurred.
func (p *StreamingParser) Next() bool {
	if p.err != nil || p.headers == nil {
		return false
	}

	row, err := p.reader.Read()
	if errors.Is(err, io.EOF) {
		return false
	}
	if err != nil {
		p.err = fmt.Errorf("failed to read CSV: %w", err)
		return false
	}

	line, _ := p.reader.FieldPos(0)
	p.current = types.NewRecord(p.headers, row, line)
	return true
}

// Record returns the current row.
func (p *StreamingParser) Record() types.Record {
	return p.current
}

// Headers returns the parsed headers.
func (p *StreamingParser) Headers() []string {
	return p.headers
}

// Err returns any error that occurred during parsing.
func (p *StreamingParser) Err() error {
	return p.err
}

// Close closes the underlying file.
func (p *StreamingParser) Close() error {
	return p.source.Close()
}

// =============================================================================
// WRITER
// =============================================================================

// WriteRecords writes a header row followed by one row per record.
// Records are laid out in header order.
func WriteRecords(w io.Writer, header []string, records []types.Record, settings config.CSVSettings) error {
	comma, err := Delimiter(settings.Delimiter)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	writer.Comma = comma
	writer.UseCRLF = !strings.EqualFold(settings.LineEnding, "lf")

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, record := range records {
		if err := writer.Write(record.Row(header)); err != nil {
			return fmt.Errorf("failed to write row %d: %w", record.RowNumber, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
