package whizz

import (
	"math"
	"strconv"
)

const (
	defaultDictCapacity = 8
	rehashThreshold     = 0.6
)

type slotStatus int8

const (
	slotUnused slotStatus = iota
	slotInUse
	slotDeleted
)

type hashSlot struct {
	status slotStatus
	key    string
	value  float64
}

// Dict maps variable names to float64 values using an open-addressing hash
// table with linear probing. Deleted slots are tombstoned to keep probe
// sequences intact until the next rehash. NaN is reserved as an absent
// marker and is never stored. The zero value is an empty dictionary. A Dict
// is not safe for concurrent use.
type Dict struct {
	stored  int
	deleted int
	slot    []hashSlot
}

// NewDict creates an empty dictionary with the default capacity of 8.
// Capacity is always a power of two and doubles on rehash.
func NewDict() *Dict {
	return &Dict{slot: make([]hashSlot, defaultDictCapacity)}
}

// hashKey returns a deterministic hash of key in the range [0, capacity).
// It is a multiplicative string hash in the style of Python's pre-3.4
// implementation: seeded by the first byte, folded left to right with a
// large odd multiplier, then XORed with the length.
func hashKey(key string, capacity int) int {
	if len(key) == 0 {
		return 0
	}
	x := uint32(key[0]) << 7
	for i := 0; i < len(key); i++ {
		x = 1000003*x ^ uint32(key[i])
	}
	x ^= uint32(len(key))
	return int(x % uint32(capacity))
}

// Size returns the number of stored keys, not counting tombstones.
func (d *Dict) Size() int {
	return d.stored
}

// Capacity returns the current slot count.
func (d *Dict) Capacity() int {
	return len(d.slot)
}

// LoadFactor returns the fraction of slots that are occupied or tombstoned.
func (d *Dict) LoadFactor() float64 {
	if len(d.slot) == 0 {
		return 0
	}
	return float64(d.stored+d.deleted) / float64(len(d.slot))
}

// Contains reports whether key is stored.
func (d *Dict) Contains(key string) bool {
	_, ok := d.Retrieve(key)
	return ok
}

// Retrieve returns the value stored under key. Probing passes through
// tombstones and stops at the first unused slot, so a deleted key is a
// clean miss.
func (d *Dict) Retrieve(key string) (float64, bool) {
	if len(d.slot) == 0 {
		return math.NaN(), false
	}
	hash := hashKey(key, len(d.slot))
	for i := 0; i < len(d.slot); i++ {
		s := &d.slot[(hash+i)%len(d.slot)]
		switch {
		case s.status == slotUnused:
			return math.NaN(), false
		case s.status == slotInUse && s.key == key:
			return s.value, true
		}
	}
	return math.NaN(), false
}

// Store inserts or updates the value under key. Storing NaN is a no-op:
// NaN is the reserved absent marker. A new insertion that pushes the load
// factor above 0.6 triggers a rehash that doubles capacity and discards
// tombstones.
func (d *Dict) Store(key string, value float64) {
	if math.IsNaN(value) {
		return
	}
	if len(d.slot) == 0 {
		d.slot = make([]hashSlot, defaultDictCapacity)
	}
	// A tombstone is a valid insertion target, but the probe must first run
	// past it in case the key is stored further along the chain.
	hash := hashKey(key, len(d.slot))
	target := -1
	for i := 0; i < len(d.slot); i++ {
		j := (hash + i) % len(d.slot)
		switch d.slot[j].status {
		case slotInUse:
			if d.slot[j].key == key {
				d.slot[j].value = value
				return
			}
		case slotDeleted:
			if target < 0 {
				target = j
			}
		case slotUnused:
			if target < 0 {
				target = j
			}
			d.insert(target, key, value)
			return
		}
	}
	// Every slot is in use or tombstoned; the load threshold guarantees at
	// least one tombstone was seen.
	d.insert(target, key, value)
}

func (d *Dict) insert(at int, key string, value float64) {
	if d.slot[at].status == slotDeleted {
		d.deleted--
	}
	d.slot[at] = hashSlot{status: slotInUse, key: key, value: value}
	d.stored++
	if d.LoadFactor() > rehashThreshold {
		d.rehash()
	}
}

// rehash doubles capacity and reinserts every in-use entry. Tombstones are
// dropped, so deleted resets to zero.
func (d *Dict) rehash() {
	old := d.slot
	d.slot = make([]hashSlot, 2*len(old))
	d.deleted = 0
	for i := range old {
		if old[i].status != slotInUse {
			continue
		}
		hash := hashKey(old[i].key, len(d.slot))
		for d.slot[hash].status == slotInUse {
			hash = (hash + 1) % len(d.slot)
		}
		d.slot[hash] = old[i]
	}
}

// MissingKeyError is the error from deleting a key that is not stored. It
// is a report, not a fatal condition; the dictionary is unchanged.
type MissingKeyError struct {
	Key string
}

func (err *MissingKeyError) Error() string {
	return "cannot delete missing key " + strconv.Quote(err.Key)
}

// Delete removes key, tombstoning its slot so that other keys sharing its
// probe sequence remain reachable.
func (d *Dict) Delete(key string) error {
	if len(d.slot) == 0 {
		return &MissingKeyError{Key: key}
	}
	hash := hashKey(key, len(d.slot))
	for i := 0; i < len(d.slot); i++ {
		s := &d.slot[(hash+i)%len(d.slot)]
		switch {
		case s.status == slotUnused:
			return &MissingKeyError{Key: key}
		case s.status == slotInUse && s.key == key:
			*s = hashSlot{status: slotDeleted, value: math.NaN()}
			d.stored--
			d.deleted++
			return nil
		}
	}
	return &MissingKeyError{Key: key}
}

// ForEach calls visit for every stored key in slot order.
func (d *Dict) ForEach(visit func(key string, value float64)) {
	if visit == nil {
		return
	}
	for i := range d.slot {
		if d.slot[i].status == slotInUse {
			visit(d.slot[i].key, d.slot[i].value)
		}
	}
}
