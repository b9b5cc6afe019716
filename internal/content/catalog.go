// Package content loads authored training modules and indexes them.
package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/voltlearn/backend/internal/domain/category"
	"github.com/voltlearn/backend/internal/domain/questionbank"
)

var (
	ErrModuleNotFound   = errors.New("module not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrDuplicateModule  = errors.New("duplicate module id")
)

//go:embed modules/*.yaml
var builtin embed.FS

// Catalog is the read-only index of every loaded module. It is built once at
// startup and safe for concurrent readers.
type Catalog struct {
	modules    map[string]*questionbank.QuestionBank
	order      []string
	categories []*category.Category
	byCategory map[string]*category.Category
}

// NewCatalog indexes banks in the given order.
func NewCatalog(banks ...*questionbank.QuestionBank) (*Catalog, error) {
	c := &Catalog{
		modules:    make(map[string]*questionbank.QuestionBank, len(banks)),
		byCategory: make(map[string]*category.Category),
	}
	for _, bank := range banks {
		if err := bank.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.modules[bank.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateModule, bank.ID)
		}
		c.modules[bank.ID] = bank
		c.order = append(c.order, bank.ID)

		if bank.Category == "" {
			continue
		}
		cat, ok := c.byCategory[category.Slug(bank.Category)]
		if !ok {
			cat = category.New(bank.Category)
			c.byCategory[cat.ID] = cat
			c.categories = append(c.categories, cat)
		}
		cat.ModuleIDs = append(cat.ModuleIDs, bank.ID)
	}
	return c, nil
}

// Builtin loads the modules shipped with the binary.
func Builtin() (*Catalog, error) {
	return LoadFS(builtin, "modules")
}

// LoadDir loads every *.yaml / *.yml module under dir.
func LoadDir(dir string) (*Catalog, error) {
	return LoadFS(os.DirFS(dir), ".")
}

// LoadFS loads every module file under root in fsys, in lexical path order.
func LoadFS(fsys fs.FS, root string) (*Catalog, error) {
	var files []string
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(path.Ext(p)) {
		case ".yaml", ".yml":
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	sort.Strings(files)

	banks := make([]*questionbank.QuestionBank, 0, len(files))
	for _, f := range files {
		data, err := fs.ReadFile(fsys, f)
		if err != nil {
			return nil, fmt.Errorf("load content: %w", err)
		}
		bank, err := ParseModule(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
		banks = append(banks, bank)
	}
	return NewCatalog(banks...)
}

// Module returns the module with the given ID.
func (c *Catalog) Module(id string) (*questionbank.QuestionBank, error) {
	bank, ok := c.modules[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrModuleNotFound, id)
	}
	return bank, nil
}

// Modules returns every module in load order.
func (c *Catalog) Modules() []*questionbank.QuestionBank {
	out := make([]*questionbank.QuestionBank, len(c.order))
	for i, id := range c.order {
		out[i] = c.modules[id]
	}
	return out
}

// Categories returns the categories in order of first appearance.
func (c *Catalog) Categories() []*category.Category {
	return append([]*category.Category(nil), c.categories...)
}

// ModulesInCategory returns the modules of one category.
func (c *Catalog) ModulesInCategory(categoryID string) ([]*questionbank.QuestionBank, error) {
	cat, ok := c.byCategory[categoryID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, categoryID)
	}
	out := make([]*questionbank.QuestionBank, len(cat.ModuleIDs))
	for i, id := range cat.ModuleIDs {
		out[i] = c.modules[id]
	}
	return out, nil
}
