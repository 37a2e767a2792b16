// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wb

import (
	"fmt"
	"io"
	"strconv"

	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
)

// LogPrec is precision for saving float values in tables
const LogPrec = 10

// ConfigTable configures given table with Time, V, H, N columns
// and fills it with the series samples, one row per sample.
func (sr *Series) ConfigTable(dt *etable.Table) {
	dt.SetMetaData("name", "WBSeries")
	dt.SetMetaData("desc", "Wang-Buzsaki membrane potential and gates over time")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))

	sch := etable.Schema{
		{Name: "Time", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "V", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "H", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "N", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	}
	n := sr.Len()
	dt.SetFromSchema(sch, n)
	for i := 0; i < n; i++ {
		s := sr.States[i]
		dt.SetCellFloat("Time", i, sr.Times[i])
		dt.SetCellFloat("V", i, s.V)
		dt.SetCellFloat("H", i, s.H)
		dt.SetCellFloat("N", i, s.N)
	}
}

// Table returns a new table holding the series
func (sr *Series) Table() *etable.Table {
	dt := &etable.Table{}
	sr.ConfigTable(dt)
	return dt
}

// WriteCSV writes the series as a table, with headers, using given delimiter
func (sr *Series) WriteCSV(w io.Writer, delim etable.Delims) error {
	dt := sr.Table()
	if err := dt.WriteCSV(w, delim, etable.Headers); err != nil {
		return fmt.Errorf("wb: writing series csv: %w", err)
	}
	return nil
}
