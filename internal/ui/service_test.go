package ui

import (
	"context"
	"net/http"

	"github.com/tturner/stockdeck/internal/catalog"
)

// fakeService records calls and plays back canned results.
type fakeService struct {
	items []catalog.Item

	listErr   error
	lowErr    error
	getErr    error
	createErr error
	updateErr error
	deleteErr error

	listCalls   []catalog.ListFilter
	lowCalls    []int
	getCalls    []string
	createCalls []catalog.ItemInput
	updateIDs   []string
	updateIns   []catalog.ItemInput
	deleteCalls []string
}

func (f *fakeService) List(_ context.Context, filter catalog.ListFilter) ([]catalog.Item, error) {
	f.listCalls = append(f.listCalls, filter)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeService) LowStock(_ context.Context, threshold int) ([]catalog.Item, error) {
	f.lowCalls = append(f.lowCalls, threshold)
	if f.lowErr != nil {
		return nil, f.lowErr
	}
	return f.items, nil
}

func (f *fakeService) Get(_ context.Context, id string) (catalog.Item, error) {
	f.getCalls = append(f.getCalls, id)
	if f.getErr != nil {
		return catalog.Item{}, f.getErr
	}
	for _, it := range f.items {
		return it, nil
	}
	return catalog.Item{}, notFoundErr("item missing")
}

func (f *fakeService) Create(_ context.Context, in catalog.ItemInput) (catalog.Item, error) {
	f.createCalls = append(f.createCalls, in)
	if f.createErr != nil {
		return catalog.Item{}, f.createErr
	}
	return catalog.Item{ID: 99, Name: in.Name, Quantity: in.Quantity, Price: in.Price}, nil
}

func (f *fakeService) Update(_ context.Context, id string, in catalog.ItemInput) (catalog.Item, error) {
	f.updateIDs = append(f.updateIDs, id)
	f.updateIns = append(f.updateIns, in)
	if f.updateErr != nil {
		return catalog.Item{}, f.updateErr
	}
	return catalog.Item{Name: in.Name, Quantity: in.Quantity, Price: in.Price}, nil
}

func (f *fakeService) Delete(_ context.Context, id string) error {
	f.deleteCalls = append(f.deleteCalls, id)
	return f.deleteErr
}

func notFoundErr(msg string) *catalog.Error {
	return &catalog.Error{Status: http.StatusNotFound, Message: msg}
}
