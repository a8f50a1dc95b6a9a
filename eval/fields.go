package eval

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/freeeve/fselect/ast"
	"github.com/freeeve/fselect/catalog"
	"github.com/freeeve/fselect/internal/media"
)

var errAbsentMeta = errors.New("eval: metadata probe returned no result")

// stringValue resolves a string-kind field (spec.md §4.4's first bullet).
// The bool return is false when the field has no value for this entry
// (unavailable-for-archive fields, or a probe that failed).
func (ev *Evaluator) stringValue(e *Entry, f ast.Field) (string, bool) {
	if e.Virtual && catalog.UnavailableForArchive(f) {
		return "", false
	}
	switch f {
	case ast.FieldName:
		if e.Virtual {
			return e.DisplayPath(), true
		}
		return e.Name, true
	case ast.FieldPath:
		return e.DisplayPath(), true
	case ast.FieldMode:
		mode, ok := e.Mode()
		if !ok {
			return "", false
		}
		return mode.String(), true
	case ast.FieldUser:
		return ev.userName(e)
	case ast.FieldGroup:
		return ev.groupName(e)
	case ast.FieldTitle, ast.FieldArtist, ast.FieldAlbum, ast.FieldGenre:
		info, ok := ev.audioInfo(e)
		if !ok || info.Tag == nil {
			return "", false
		}
		switch f {
		case ast.FieldTitle:
			return info.Tag.Title, info.Tag.Title != ""
		case ast.FieldArtist:
			return info.Tag.Artist, info.Tag.Artist != ""
		case ast.FieldAlbum:
			return info.Tag.Album, info.Tag.Album != ""
		case ast.FieldGenre:
			return info.Tag.Genre, info.Tag.Genre != ""
		}
	}
	return "", false
}

// numericValue resolves a numeric-kind field (spec.md §4.4's second
// bullet). Size additionally accepts suffixed literals at parse time; here
// it is always a plain byte count.
func (ev *Evaluator) numericValue(e *Entry, f ast.Field) (int64, bool) {
	if e.Virtual && catalog.UnavailableForArchive(f) {
		return 0, false
	}
	switch f {
	case ast.FieldSize, ast.FieldFormattedSize:
		return e.Size()
	case ast.FieldUid:
		uid, _, _, _, ok := ev.unixMeta(e)
		return int64(uid), ok
	case ast.FieldGid:
		_, gid, _, _, ok := ev.unixMeta(e)
		return int64(gid), ok
	case ast.FieldWidth:
		dim, ok := ev.imageDim(e)
		return int64(dim.Width), ok
	case ast.FieldHeight:
		dim, ok := ev.imageDim(e)
		return int64(dim.Height), ok
	case ast.FieldBitrate:
		info, ok := ev.audioInfo(e)
		return int64(info.Bitrate), ok && info.Bitrate > 0
	case ast.FieldFreq:
		info, ok := ev.audioInfo(e)
		return int64(info.Freq), ok && info.Freq > 0
	case ast.FieldYear:
		info, ok := ev.audioInfo(e)
		if !ok || info.Tag == nil || info.Tag.Year == 0 {
			return 0, false
		}
		return int64(info.Tag.Year), true
	}
	return 0, false
}

// boolValue resolves a boolean-kind field (spec.md §4.4's third bullet).
func (ev *Evaluator) boolValue(e *Entry, f ast.Field) (bool, bool) {
	if e.Virtual && catalog.UnavailableForArchive(f) {
		return false, true // "evaluate to false", not "unavailable"
	}
	switch f {
	case ast.FieldIsArchive:
		return isArchive(e.Path), true
	case ast.FieldIsAudio:
		return isAudio(e.Path), true
	case ast.FieldIsBook:
		return isBook(e.Path), true
	case ast.FieldIsDoc:
		return isDoc(e.Path), true
	case ast.FieldIsImage:
		return isImage(e.Path), true
	case ast.FieldIsSource:
		return isSource(e.Path), true
	case ast.FieldIsVideo:
		return isVideo(e.Path), true
	case ast.FieldIsShebang:
		return ev.isShebang(e), true
	case ast.FieldIsDir:
		return e.IsDir(), true
	case ast.FieldIsFile:
		mode, ok := e.Mode()
		return ok && mode.IsRegular(), true
	case ast.FieldIsSymlink:
		if e.Virtual {
			return false, true
		}
		info, err := os.Lstat(e.Path)
		return err == nil && info.Mode()&os.ModeSymlink != 0, true
	case ast.FieldIsPipe:
		mode, _ := e.Mode()
		return mode&os.ModeNamedPipe != 0, true
	case ast.FieldIsCharacterDevice:
		mode, _ := e.Mode()
		return mode&os.ModeCharDevice != 0, true
	case ast.FieldIsBlockDevice:
		mode, _ := e.Mode()
		return mode&os.ModeDevice != 0 && mode&os.ModeCharDevice == 0, true
	case ast.FieldIsSocket:
		mode, _ := e.Mode()
		return mode&os.ModeSocket != 0, true
	case ast.FieldUserRead:
		return ev.permBit(e, 0400), true
	case ast.FieldUserWrite:
		return ev.permBit(e, 0200), true
	case ast.FieldUserExec:
		return ev.permBit(e, 0100), true
	case ast.FieldGroupRead:
		return ev.permBit(e, 0040), true
	case ast.FieldGroupWrite:
		return ev.permBit(e, 0020), true
	case ast.FieldGroupExec:
		return ev.permBit(e, 0010), true
	case ast.FieldOtherRead:
		return ev.permBit(e, 0004), true
	case ast.FieldOtherWrite:
		return ev.permBit(e, 0002), true
	case ast.FieldOtherExec:
		return ev.permBit(e, 0001), true
	case ast.FieldIsHidden:
		return ev.isHidden(e), true
	case ast.FieldHasXattrs:
		return ev.hasXattrs(e), true
	}
	return false, false
}

func (ev *Evaluator) permBit(e *Entry, bit os.FileMode) bool {
	mode, ok := e.Mode()
	return ok && mode.Perm()&bit != 0
}

func (ev *Evaluator) isHidden(e *Entry) bool {
	name := e.Name
	return strings.HasPrefix(name, ".")
}

// timeValue resolves a datetime-kind field (spec.md §4.4's fourth bullet).
func (ev *Evaluator) timeValue(e *Entry, f ast.Field) (time.Time, bool) {
	if e.Virtual && catalog.UnavailableForArchive(f) {
		return time.Time{}, false
	}
	switch f {
	case ast.FieldModified:
		return e.ModTime()
	case ast.FieldCreated:
		_, _, _, created, ok := ev.unixMeta(e)
		return created, ok
	case ast.FieldAccessed:
		_, _, accessed, _, ok := ev.unixMeta(e)
		return accessed, ok
	}
	return time.Time{}, false
}

func (ev *Evaluator) unixMeta(e *Entry) (uid, gid int, accessed, created time.Time, ok bool) {
	if e.Virtual {
		return 0, 0, time.Time{}, time.Time{}, false
	}
	info, statOK := e.Info()
	if !statOK {
		return 0, 0, time.Time{}, time.Time{}, false
	}
	return unixStat(info)
}

func (ev *Evaluator) userName(e *Entry) (string, bool) {
	if e.userLoaded {
		return e.userName, e.userOK
	}
	e.userLoaded = true
	uid, _, _, _, ok := ev.unixMeta(e)
	if !ok {
		return "", false
	}
	e.userName, e.userOK = ev.users.User(uid)
	return e.userName, e.userOK
}

func (ev *Evaluator) groupName(e *Entry) (string, bool) {
	if e.groupLoaded {
		return e.groupName, e.groupOK
	}
	e.groupLoaded = true
	_, gid, _, _, ok := ev.unixMeta(e)
	if !ok {
		return "", false
	}
	e.groupName, e.groupOK = ev.users.Group(gid)
	return e.groupName, e.groupOK
}

func (ev *Evaluator) imageDim(e *Entry) (media.Dimensions, bool) {
	if e.dimLoaded {
		return e.dim, e.dimOK
	}
	e.dimLoaded = true
	if e.Virtual {
		return media.Dimensions{}, false
	}
	d, ok := ev.images.Probe(e.Path)
	e.dim, e.dimOK = d, ok
	if !ok && ev.log != nil {
		ev.log.Degraded(e.Path, "image", errAbsentMeta)
	}
	return d, ok
}

func (ev *Evaluator) audioInfo(e *Entry) (media.AudioInfo, bool) {
	if e.audioLoaded {
		return e.audio, e.audioOK
	}
	e.audioLoaded = true
	if e.Virtual {
		return media.AudioInfo{}, false
	}
	a, ok := ev.audio.Probe(e.Path)
	e.audio, e.audioOK = a, ok
	if !ok && ev.log != nil {
		ev.log.Degraded(e.Path, "audio", errAbsentMeta)
	}
	return a, ok
}

func (ev *Evaluator) isShebang(e *Entry) bool {
	if e.shebangLoaded {
		return e.shebang
	}
	e.shebangLoaded = true
	if e.Virtual {
		return false
	}
	f, err := os.Open(e.Path)
	if err != nil {
		return false
	}
	defer f.Close()
	var buf [2]byte
	n, _ := f.Read(buf[:])
	e.shebang = n == 2 && buf[0] == 0x23 && buf[1] == 0x21
	return e.shebang
}

func (ev *Evaluator) hasXattrs(e *Entry) bool {
	if e.xattrsLoaded {
		return e.xattrs
	}
	e.xattrsLoaded = true
	if e.Virtual {
		return false
	}
	e.xattrs = hasXattrsPlatform(e.Path)
	return e.xattrs
}

func parseTruthy(s string) bool {
	b, err := cast.ToBoolE(s)
	return err == nil && b
}

func parseIntValue(s string) (int64, bool) {
	n, err := cast.ToInt64E(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
