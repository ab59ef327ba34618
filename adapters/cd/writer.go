// Package cd writes column-description files: tab-separated listings of
// dataset column roles consumed by the training side.
package cd

import (
	"fmt"
	"io"
	"os"
	"sort"

	"curveval/domain/core"
)

// Role is the training-side meaning of one dataset column.
type Role string

const (
	RoleNum        Role = "Num"
	RoleLabel      Role = "Label"
	RoleWeight     Role = "Weight"
	RoleBaseline   Role = "Baseline"
	RoleDocID      Role = "DocId"
	RoleGroupID    Role = "GroupId"
	RoleSubgroupID Role = "SubgroupId"
	RoleTimestamp  Role = "Timestamp"
	RoleCateg      Role = "Categ"
	RoleAuxiliary  Role = "Auxiliary"
)

// Description enumerates the recognized column roles explicitly. Nil
// single-column fields mean "not present"; index 0 stays expressible.
type Description struct {
	Label            *int
	Weight           *int
	Baseline         *int
	DocID            *int
	GroupID          *int
	SubgroupID       *int
	Timestamp        *int
	CatFeatures      []int
	AuxiliaryColumns []int
	// FeatureNames maps column index to a human-readable name. Indices
	// that appear only here are emitted with the default Num role.
	FeatureNames map[int]string
}

// Index is a convenience helper for the optional single-column fields.
func Index(i int) *int { return &i }

type entry struct {
	role Role
	name string
}

// build resolves the description into per-index entries, failing on any
// index assigned more than one role.
func (d Description) build() (map[int]*entry, error) {
	entries := make(map[int]*entry)

	assign := func(index int, role Role) error {
		if index < 0 {
			return core.NewInputValidationError(fmt.Sprintf("column index must be non-negative, got %d", index))
		}
		if _, taken := entries[index]; taken {
			return core.NewInputValidationError(fmt.Sprintf("the index %d occurs more than once", index))
		}
		entries[index] = &entry{role: role}
		return nil
	}

	singles := []struct {
		index *int
		role  Role
	}{
		{d.Label, RoleLabel},
		{d.Weight, RoleWeight},
		{d.Baseline, RoleBaseline},
		{d.DocID, RoleDocID},
		{d.GroupID, RoleGroupID},
		{d.SubgroupID, RoleSubgroupID},
		{d.Timestamp, RoleTimestamp},
	}
	for _, s := range singles {
		if s.index == nil {
			continue
		}
		if err := assign(*s.index, s.role); err != nil {
			return nil, err
		}
	}
	for _, index := range d.CatFeatures {
		if err := assign(index, RoleCateg); err != nil {
			return nil, err
		}
	}
	for _, index := range d.AuxiliaryColumns {
		if err := assign(index, RoleAuxiliary); err != nil {
			return nil, err
		}
	}

	for index, name := range d.FeatureNames {
		if index < 0 {
			return nil, core.NewInputValidationError(fmt.Sprintf("column index must be non-negative, got %d", index))
		}
		if e, ok := entries[index]; ok {
			e.name = name
		} else {
			entries[index] = &entry{role: RoleNum, name: name}
		}
	}

	return entries, nil
}

// Write emits the description as `<index>\t<role>\t<name>` lines sorted
// ascending by index.
func (d Description) Write(w io.Writer) error {
	entries, err := d.build()
	if err != nil {
		return err
	}

	indices := make([]int, 0, len(entries))
	for index := range entries {
		indices = append(indices, index)
	}
	sort.Ints(indices)

	for _, index := range indices {
		e := entries[index]
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", index, e.role, e.name); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes the description to the given path.
func (d Description) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := d.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
