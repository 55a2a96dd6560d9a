package filesystem

import "fmt"

// LinkName picks the path for a new link to target inside the directory p.
// The first candidate is the target's own name followed by extension. If an
// entry already exists there, "stem (2).ext", "stem (3).ext" and so on are
// tried until a free name turns up.
//
// Every candidate is checked against the filesystem right before it is
// returned, but nothing is reserved: another process may still take the name
// before the link is created.
func (p Path) LinkName(target Path, extension string) (Path, error) {
	link := p.Join(target.Basename() + extension)

	stem := target.Stem()
	ext := target.Ext()
	for i := 2; ; i++ {
		exists, err := link.Exists()
		if err != nil {
			return Path(""), err
		}

		if !exists {
			return link, nil
		}

		link = p.Join(fmt.Sprintf("%s (%d)%s%s", stem, i, ext, extension))
	}
}
