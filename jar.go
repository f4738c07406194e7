package splitcookies

import "iter"

// Jar is an ordered cookie storage. It acts as a map but uses linear search
// instead, which proves to be more efficient on the handful of entries cookie
// headers carry in practice. Insertion order is header order, duplicates are
// kept.
//
// All lookups are case-sensitive: cookie names, unlike header field names,
// are.
type Jar struct {
	cookies    []Cookie
	namesBuff  []string
	valuesBuff []string
}

func NewJar() *Jar {
	return new(Jar)
}

// NewJarPrealloc returns a Jar with pre-allocated underlying storage.
func NewJarPrealloc(n int) *Jar {
	return &Jar{
		cookies: make([]Cookie, 0, n),
	}
}

// Add appends a cookie.
func (j *Jar) Add(name, value string) *Jar {
	j.cookies = append(j.cookies, Cookie{Name: name, Value: value})
	return j
}

// Parse fills the jar with every well-formed cookie of the header, skipping
// malformed entries. Use Walk directly if per-entry failures matter.
func (j *Jar) Parse(header string) *Jar {
	return j.parse(header, false)
}

// ParseDecoded is Parse with percent-decoding applied. Entries with malformed
// escapes are skipped along with the malformed ones.
func (j *Jar) ParseDecoded(header string) *Jar {
	return j.parse(header, true)
}

func (j *Jar) parse(header string, decode bool) *Jar {
	for c, err := range walk(header, decode) {
		if err == nil {
			j.cookies = append(j.cookies, c)
		}
	}

	return j
}

// Value returns the first value corresponding to the name, otherwise an
// empty string.
func (j *Jar) Value(name string) string {
	return j.ValueOr(name, "")
}

// ValueOr returns either the first value corresponding to the name or the
// fallback.
func (j *Jar) ValueOr(name, or string) string {
	value, found := j.Get(name)
	if !found {
		return or
	}

	return value
}

// Get returns the first value and a bool indicating whether it was found.
func (j *Jar) Get(name string) (value string, found bool) {
	for _, c := range j.cookies {
		if c.Name == name {
			return c.Value, true
		}
	}

	return "", false
}

// Values returns all values stored under the name, nil if there are none.
//
// WARNING: calling it twice will override values returned by the first call.
// Consider copying the returned slice for safe use.
func (j *Jar) Values(name string) []string {
	j.valuesBuff = j.valuesBuff[:0]

	for _, c := range j.cookies {
		if c.Name == name {
			j.valuesBuff = append(j.valuesBuff, c.Value)
		}
	}

	if len(j.valuesBuff) == 0 {
		return nil
	}

	return j.valuesBuff
}

// Names returns all unique names in insertion order.
//
// WARNING: calling it twice will override values returned by the first call.
// Consider copying the returned slice for safe use.
func (j *Jar) Names() []string {
	j.namesBuff = j.namesBuff[:0]

	for _, c := range j.cookies {
		if !contains(j.namesBuff, c.Name) {
			j.namesBuff = append(j.namesBuff, c.Name)
		}
	}

	return j.namesBuff
}

// Has indicates whether there's an entry under the name.
func (j *Jar) Has(name string) bool {
	_, found := j.Get(name)
	return found
}

// Len returns the number of stored cookies.
func (j *Jar) Len() int {
	return len(j.cookies)
}

func (j *Jar) Empty() bool {
	return j.Len() == 0
}

// Iter returns an iterator over name-value pairs in insertion order.
func (j *Jar) Iter() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, c := range j.cookies {
			if !yield(c.Name, c.Value) {
				return
			}
		}
	}
}

// Clone creates a deep copy which may be stored somewhere safely. Comes at
// the cost of an allocation.
func (j *Jar) Clone() *Jar {
	return &Jar{
		cookies: append([]Cookie(nil), j.cookies...),
	}
}

// Expose exposes the underlying cookies slice.
func (j *Jar) Expose() []Cookie {
	return j.cookies
}

// Clear removes all the entries. The allocated space is kept for reuse.
func (j *Jar) Clear() *Jar {
	j.cookies = j.cookies[:0]
	return j
}

func contains(collection []string, name string) bool {
	for _, element := range collection {
		if element == name {
			return true
		}
	}

	return false
}
