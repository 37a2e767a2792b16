// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wb

// TypeName, Class and Name make the Model selectable by parameter sheets:
// "Model" selects by type, ".WB" by class, "#WB" by name.

func (m *Model) TypeName() string { return "Model" }
func (m *Model) Class() string    { return "WB" }
func (m *Model) Name() string     { return "WB" }
