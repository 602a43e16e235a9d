// Package schema defines the Pokédex reference schema: one Go model per
// table, declared with struct tags that drive DDL generation, the column
// registry, and gorm AutoMigrate.
//
// Tags on every persisted field:
//
//   - db: the column name.
//   - ddl: column type, nullability, keys and the FK target, e.g.
//     "INT NOT NULL REFERENCES generations(id)". When several columns of a
//     model are marked PRIMARY KEY the generator emits a composite
//     table-level key.
//   - enum: allowed values for enumerated string columns.
//
// Text columns additionally carry a text tag with a markup class and
// optional flags, so a rendering collaborator can choose the right
// interpreter per column:
//
//   - plaintext: normal Unicode text (widely used in names)
//   - markdown: the dataset's Markdown flavor (effect descriptions)
//   - gametext: transcription of in-game text that strives to be both
//     human-readable and represent the original text exactly
//   - identifier: a fan-made identifier in the [-_a-z0-9]* format, not
//     intended for translation
//   - latex: a formula in LaTeX syntax
//
// The official flag marks values that appear in games or official
// material; foreign marks non-English text. A few columns carry
// official together with the identifier class because one column does
// double duty as an English display name and a slug; both flags are kept
// rather than resolved.
//
// Columns whose units or meaning are undocumented upstream (encounter
// rarity, berry soil dryness, the encounter slot number) are stored as
// opaque integers and never rescaled.
package schema

// Model is implemented by every table of the schema.
type Model interface {
	// TableName returns the table name for this model.
	TableName() string
}
