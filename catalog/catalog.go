// Package catalog enumerates the selectable fields of spec.md §3 and their
// semantic Kind, the "field catalog" component of spec.md §2. Parser and
// eval both consult it: the parser to pick how a predicate's literal is
// coerced (field existence is checked by ast.LookupField), eval to pick
// the right comparison and rendering rule
// without a virtual-dispatch hierarchy (spec.md §9).
package catalog

import "github.com/freeeve/fselect/ast"

var kinds = map[ast.Field]ast.Kind{
	ast.FieldName:      ast.KindString,
	ast.FieldPath:      ast.KindString,
	ast.FieldIsArchive: ast.KindBool,
	ast.FieldIsAudio:   ast.KindBool,
	ast.FieldIsBook:    ast.KindBool,
	ast.FieldIsDoc:     ast.KindBool,
	ast.FieldIsImage:   ast.KindBool,
	ast.FieldIsSource:  ast.KindBool,
	ast.FieldIsVideo:   ast.KindBool,
	ast.FieldIsShebang: ast.KindBool,

	ast.FieldSize:              ast.KindNumeric,
	ast.FieldFormattedSize:     ast.KindNumeric,
	ast.FieldIsDir:             ast.KindBool,
	ast.FieldIsFile:            ast.KindBool,
	ast.FieldIsSymlink:         ast.KindBool,
	ast.FieldIsPipe:            ast.KindBool,
	ast.FieldIsCharacterDevice: ast.KindBool,
	ast.FieldIsBlockDevice:     ast.KindBool,
	ast.FieldIsSocket:          ast.KindBool,
	ast.FieldMode:              ast.KindString,
	ast.FieldUserRead:          ast.KindBool,
	ast.FieldUserWrite:         ast.KindBool,
	ast.FieldUserExec:          ast.KindBool,
	ast.FieldGroupRead:         ast.KindBool,
	ast.FieldGroupWrite:        ast.KindBool,
	ast.FieldGroupExec:         ast.KindBool,
	ast.FieldOtherRead:         ast.KindBool,
	ast.FieldOtherWrite:        ast.KindBool,
	ast.FieldOtherExec:         ast.KindBool,
	ast.FieldIsHidden:          ast.KindBool,
	ast.FieldUid:               ast.KindNumeric,
	ast.FieldGid:               ast.KindNumeric,
	ast.FieldUser:              ast.KindString,
	ast.FieldGroup:             ast.KindString,
	ast.FieldCreated:           ast.KindDatetime,
	ast.FieldAccessed:          ast.KindDatetime,
	ast.FieldModified:          ast.KindDatetime,
	ast.FieldHasXattrs:         ast.KindBool,

	ast.FieldWidth:  ast.KindNumeric,
	ast.FieldHeight: ast.KindNumeric,

	ast.FieldBitrate: ast.KindNumeric,
	ast.FieldFreq:    ast.KindNumeric,
	ast.FieldTitle:   ast.KindString,
	ast.FieldArtist:  ast.KindString,
	ast.FieldAlbum:   ast.KindString,
	ast.FieldYear:    ast.KindNumeric,
	ast.FieldGenre:   ast.KindString,
}

// KindOf returns the semantic Kind of f, used to pick comparison/rendering
// rules. Unrecognized fields report KindString, matching the "treat as
// opaque text" fallback the teacher's token.String() uses for out-of-range
// values.
func KindOf(f ast.Field) ast.Kind {
	if k, ok := kinds[f]; ok {
		return k
	}
	return ast.KindString
}

// archiveUnavailable lists the fields spec.md §3/§4.4 says must evaluate
// false (predicates) or render empty (projections) for virtual archive
// entries, because they require inode metadata, image probing or audio
// probing that an archive member cannot supply.
var archiveUnavailable = map[ast.Field]bool{
	ast.FieldUid:       true,
	ast.FieldGid:       true,
	ast.FieldUser:      true,
	ast.FieldGroup:     true,
	ast.FieldCreated:   true,
	ast.FieldAccessed:  true,
	ast.FieldHasXattrs: true,
	ast.FieldIsShebang: true,
	ast.FieldWidth:     true,
	ast.FieldHeight:    true,
	ast.FieldBitrate:   true,
	ast.FieldFreq:      true,
	ast.FieldTitle:     true,
	ast.FieldArtist:    true,
	ast.FieldAlbum:     true,
	ast.FieldYear:      true,
	ast.FieldGenre:     true,
}

// UnavailableForArchive reports whether f cannot be evaluated against a
// virtual (archive-member) entry.
func UnavailableForArchive(f ast.Field) bool {
	return archiveUnavailable[f]
}
