package schema

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// Markup classifies how a text column's content is meant to be
// rendered.
type Markup string

const (
	// MarkupNone marks columns that carry no text classification.
	MarkupNone Markup = ""
	// MarkupPlaintext is regular flowing text with no formatting.
	MarkupPlaintext Markup = "plaintext"
	// MarkupMarkdown is prose with markdown formatting.
	MarkupMarkdown Markup = "markdown"
	// MarkupGametext is text lifted from the games, linebreaks intact.
	MarkupGametext Markup = "gametext"
	// MarkupIdentifier is a lowercase-and-dashes slug.
	MarkupIdentifier Markup = "identifier"
	// MarkupLatex is a mathematical formula in LaTeX syntax.
	MarkupLatex Markup = "latex"
)

// ColumnInfo describes one column of a table: its SQL shape plus the
// text classification carried over from the source schema.
type ColumnInfo struct {
	Table      string
	Name       string
	FieldIndex int
	Type       string
	Nullable   bool
	PrimaryKey bool
	MaxLen     int
	Markup     Markup
	Official   bool
	Foreign    bool
	RefTable   string
	RefColumn  string
	Enum       []string
}

func typeOf(m Model) reflect.Type {
	t := reflect.TypeOf(m)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

var (
	varcharRx = regexp.MustCompile(`^VARCHAR\((\d+)\)`)
	refRx     = regexp.MustCompile(`REFERENCES (\w+)\((\w+)\)`)

	columnsMu    sync.Mutex
	columnsCache = make(map[string][]ColumnInfo)
)

// Columns returns column metadata for a model, derived from its struct
// tags. Results are cached per table.
func Columns(m Model) []ColumnInfo {
	columnsMu.Lock()
	defer columnsMu.Unlock()

	table := m.TableName()
	if cols, ok := columnsCache[table]; ok {
		return cols
	}

	t := typeOf(m)

	var cols []ColumnInfo
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")
		if dbTag == "" || ddlTag == "" {
			continue
		}

		col := ColumnInfo{
			Table:      table,
			Name:       dbTag,
			FieldIndex: i,
			Type:       strings.Fields(ddlTag)[0],
			Nullable:   !strings.Contains(ddlTag, "NOT NULL"),
			PrimaryKey: strings.Contains(ddlTag, "PRIMARY KEY"),
		}
		// Key columns never hold NULL, whether or not the tag spells
		// it out.
		if col.PrimaryKey {
			col.Nullable = false
		}
		if sub := varcharRx.FindStringSubmatch(ddlTag); sub != nil {
			col.MaxLen, _ = strconv.Atoi(sub[1])
		}
		if sub := refRx.FindStringSubmatch(ddlTag); sub != nil {
			col.RefTable, col.RefColumn = sub[1], sub[2]
		}

		if textTag := field.Tag.Get("text"); textTag != "" {
			for _, part := range strings.Split(textTag, ",") {
				switch part {
				case "official":
					col.Official = true
				case "foreign":
					col.Foreign = true
				default:
					col.Markup = Markup(part)
				}
			}
		}
		if enumTag := field.Tag.Get("enum"); enumTag != "" {
			col.Enum = strings.Split(enumTag, ",")
		}

		cols = append(cols, col)
	}

	columnsCache[table] = cols
	return cols
}

// PrimaryKey returns the key columns of a model in declaration order.
func PrimaryKey(m Model) []ColumnInfo {
	var pk []ColumnInfo
	for _, col := range Columns(m) {
		if col.PrimaryKey {
			pk = append(pk, col)
		}
	}
	return pk
}

// AllColumns returns column metadata for every model, keyed by table
// name.
func AllColumns() map[string][]ColumnInfo {
	res := make(map[string][]ColumnInfo)
	for _, m := range AllModels() {
		model := m.(Model)
		res[model.TableName()] = Columns(model)
	}
	return res
}
