package dataset

import (
	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
)

const (
	keyLabels   key.Name = "labels"
	keyDatasets key.Name = "datasets"
)

// Data is the data object handed to the engine: the category labels and
// the datasets.
type Data struct {
	node     *native.Node
	datasets []*LineDataset
}

// NewData creates an empty data object.
func NewData() *Data {
	return &Data{node: native.NewNode(nil)}
}

// Object returns the backing object.
func (d *Data) Object() *native.Object { return d.node.Object() }

// Labels returns the category labels.
func (d *Data) Labels() []string { return d.node.Object().GetStrings(keyLabels) }

// SetLabels sets the category labels.
func (d *Data) SetLabels(labels ...string) {
	if len(labels) == 0 {
		d.node.Remove(keyLabels)
		return
	}
	d.node.Set(keyLabels, native.Strings(labels...))
}

// Datasets returns the datasets in the order they were added.
func (d *Data) Datasets() []*LineDataset { return d.datasets }

// Add appends datasets.
func (d *Data) Add(datasets ...*LineDataset) {
	d.datasets = append(d.datasets, datasets...)
	d.sync()
}

// Remove deletes the dataset with id. It reports whether it was found.
func (d *Data) Remove(id string) bool {
	for i, ds := range d.datasets {
		if ds.ID() == id {
			d.datasets = append(d.datasets[:i:i], d.datasets[i+1:]...)
			d.sync()
			return true
		}
	}
	return false
}

func (d *Data) sync() {
	items := make([]native.Value, len(d.datasets))
	for i, ds := range d.datasets {
		items[i] = native.ObjectValue(ds.Object())
	}
	d.node.Set(keyDatasets, native.ArrayOf(items...))
}
