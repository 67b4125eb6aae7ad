package get

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/grimportent/fronts/pkg/app"
	"github.com/grimportent/fronts/pkg/front"
	"github.com/grimportent/fronts/pkg/printers"
)

type Get struct {
	ShowID bool
	Front  string     // optional name or id filter
	Type   front.Type // optional type filter, empty means all

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}
	if err := n.Service.Refresh(ctx); err != nil {
		return err
	}
	doc := n.Service.Document()

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.Front != "" {
		f := doc.Front(n.Front)
		if f == nil {
			f = findByName(doc, n.Front)
		}
		if f == nil {
			return fmt.Errorf("no front matches %q", n.Front)
		}
		pp.Front(f)
		return nil
	}

	if n.Type == "" {
		pp.Document(doc)
		return nil
	}
	shown := 0
	for i := range doc.Fronts {
		if doc.Fronts[i].Type == n.Type {
			pp.Front(&doc.Fronts[i])
			shown++
		}
	}
	if shown == 0 {
		pp.Document(&front.Document{})
	}
	return nil
}

func findByName(doc *front.Document, name string) *front.Front {
	if doc == nil {
		return nil
	}
	for i := range doc.Fronts {
		if strings.EqualFold(doc.Fronts[i].Name, name) {
			return &doc.Fronts[i]
		}
	}
	return nil
}
