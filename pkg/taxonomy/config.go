package taxonomy

// Config is the static description a Taxonomy is built from.
type Config struct {
	Groups []Group
	// Conflicts lists, per group, the other groups it overrides. A group
	// always overrides itself; that entry is implied.
	Conflicts map[ClassGroupID][]ClassGroupID
	// PostfixConflicts lists groups additionally overridden when a class of
	// the key group carries a postfix modifier, as in text-lg/7.
	PostfixConflicts map[ClassGroupID][]ClassGroupID
}

// Extend returns a copy of c with ext layered on top. Definitions of a group
// that already exists are appended to it; conflict lists are unioned.
func (c Config) Extend(ext Config) Config {
	out := Config{
		Groups:           make([]Group, 0, len(c.Groups)+len(ext.Groups)),
		Conflicts:        copyConflicts(c.Conflicts),
		PostfixConflicts: copyConflicts(c.PostfixConflicts),
	}

	index := make(map[ClassGroupID]int, len(c.Groups))
	for _, g := range c.Groups {
		index[g.ID] = len(out.Groups)
		out.Groups = append(out.Groups, Group{ID: g.ID, Definitions: append([]Definition(nil), g.Definitions...)})
	}
	for _, g := range ext.Groups {
		if i, ok := index[g.ID]; ok {
			out.Groups[i].Definitions = append(out.Groups[i].Definitions, g.Definitions...)
			continue
		}
		index[g.ID] = len(out.Groups)
		out.Groups = append(out.Groups, Group{ID: g.ID, Definitions: append([]Definition(nil), g.Definitions...)})
	}

	mergeConflicts(out.Conflicts, ext.Conflicts)
	mergeConflicts(out.PostfixConflicts, ext.PostfixConflicts)
	return out
}

func copyConflicts(in map[ClassGroupID][]ClassGroupID) map[ClassGroupID][]ClassGroupID {
	out := make(map[ClassGroupID][]ClassGroupID, len(in))
	for k, v := range in {
		out[k] = append([]ClassGroupID(nil), v...)
	}
	return out
}

func mergeConflicts(dst, src map[ClassGroupID][]ClassGroupID) {
	for k, targets := range src {
		for _, t := range targets {
			if !containsGroup(dst[k], t) {
				dst[k] = append(dst[k], t)
			}
		}
	}
}

func containsGroup(list []ClassGroupID, g ClassGroupID) bool {
	for _, x := range list {
		if x == g {
			return true
		}
	}
	return false
}
