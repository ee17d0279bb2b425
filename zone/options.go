package zone

import "github.com/sirupsen/logrus"

// LogCategory is a bitmask selecting which diagnostic categories Options.Log
// receives (spec §6 "log.categories").
type LogCategory uint32

const (
	LogSyntax LogCategory = 1 << iota
	LogSemantic
	LogInclude
	LogDispatch

	LogAll = LogSyntax | LogSemantic | LogInclude | LogDispatch
)

// Allocator is the optional allocator override (spec §6
// "allocator.{malloc,realloc,free,arena}"). Go's runtime already owns
// allocation, so this exists to satisfy the contract for callers porting
// C code. The engine always allocates via make/append and never calls
// these hooks; checkOptions only enforces that they are set all together
// or not at all.
type Allocator struct {
	Malloc  func(size int) []byte
	Realloc func(buf []byte, size int) []byte
	Free    func(buf []byte)
	Arena   any
}

func (a *Allocator) isZero() bool {
	return a == nil || (a.Malloc == nil && a.Realloc == nil && a.Free == nil && a.Arena == nil)
}

func (a *Allocator) isComplete() bool {
	return a.Malloc != nil && a.Realloc != nil && a.Free != nil && a.Arena != nil
}

// Options configures one parse (spec §6). Required fields are validated by
// checkOptions in the order the original source's check_options did:
// accept, origin, default TTL, default class, then the allocator
// all-or-nothing rule.
type Options struct {
	Accept        Accept
	Origin        string
	DefaultTTL    uint32
	DefaultClass  Class
	Allocator     *Allocator
	Log           *logrus.Logger
	LogCategories LogCategory
	User          any
	Cache         *Cache
}

// checkOptions validates o before any I/O is attempted, per spec §7's
// "Parameter — invalid or missing option, detected before any I/O" rule,
// reproducing original_source/zone.c's check_options validation order.
func checkOptions(o *Options) error {
	if o.Accept == nil {
		return Error{Code: ErrBadParameter, Message: "accept.add is required"}
	}
	if o.Origin == "" {
		return Error{Code: ErrBadParameter, Message: "origin is required"}
	}
	if o.DefaultTTL == 0 || o.DefaultTTL > maxTTL {
		return Error{Code: ErrBadParameter, Message: "default_ttl is required and must be in 1..2^31-1"}
	}
	if o.DefaultClass < ClassIN || o.DefaultClass > ClassHS {
		return Error{Code: ErrBadParameter, Message: "default_class is required and must be one of IN, CS, CH, HS"}
	}
	if o.Allocator != nil && !o.Allocator.isZero() && !o.Allocator.isComplete() {
		return Error{Code: ErrBadParameter, Message: "allocator overrides must supply all of malloc, realloc, free, arena, or none"}
	}
	if o.Cache == nil || len(o.Cache.Owners) == 0 || len(o.Cache.RDATAs) == 0 {
		return Error{Code: ErrBadParameter, Message: "a non-empty cache is required"}
	}
	// spec §6 "default all categories enabled if neither log field set":
	// reproduces original_source/zone.c's set_defaults condition, which
	// only defaults categories when the caller left *both* log.write and
	// log.categories unset — setting only log.categories with no sink is
	// legal (it'd just have nowhere to go).
	if o.Log == nil && o.LogCategories == 0 {
		o.LogCategories = LogAll
	}
	return nil
}

// logf emits a diagnostic through o.Log, gated on category per spec §6's
// log.categories bitmask (o.Log == nil disables logging entirely, same as
// original_source/zone.c treating a null log.write as "no sink").
func (o *Options) logf(category LogCategory, pos Pos, format string, args ...any) {
	if o.Log == nil || o.LogCategories&category == 0 {
		return
	}
	o.Log.WithField("pos", pos.String()).Debugf(format, args...)
}
