package service

import (
	"context"
	"testing"

	"stockroom/internal/apierror"
	"stockroom/internal/dto"
	"stockroom/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategoryDuplicateName(t *testing.T) {
	categories := newMemCategories()
	categories.add(model.Category{Name: "Electronics"})
	svc := NewCategoryService(categories)

	_, err := svc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Electronics"})

	var verr *apierror.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCreateCategoryUnknownParent(t *testing.T) {
	svc := NewCategoryService(newMemCategories())

	missing := uint(99)
	_, err := svc.Create(context.Background(), dto.CreateCategoryRequest{
		Name:             "Phones",
		ParentCategoryID: &missing,
	})

	var verr *apierror.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestDeleteCategoryWithChildrenRefused(t *testing.T) {
	categories := newMemCategories()
	parent := categories.add(model.Category{Name: "Electronics"})
	categories.add(model.Category{Name: "Phones", ParentCategoryID: &parent.ID})
	svc := NewCategoryService(categories)

	_, err := svc.Delete(context.Background(), parent.ID)
	var verr *apierror.ValidationError
	require.ErrorAs(t, err, &verr)

	// The parent row is untouched.
	still, findErr := svc.Get(context.Background(), parent.ID)
	require.NoError(t, findErr)
	require.NotNil(t, still)
}

func TestDeleteLeafCategory(t *testing.T) {
	categories := newMemCategories()
	leaf := categories.add(model.Category{Name: "Cables"})
	svc := NewCategoryService(categories)

	deleted, err := svc.Delete(context.Background(), leaf.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestGetCategoryIncludesParent(t *testing.T) {
	categories := newMemCategories()
	parent := categories.add(model.Category{Name: "Electronics"})
	child := categories.add(model.Category{Name: "Phones", ParentCategoryID: &parent.ID})
	svc := NewCategoryService(categories)

	resp, err := svc.Get(context.Background(), child.ID)
	require.NoError(t, err)
	require.NotNil(t, resp.Parent)
	assert.Equal(t, "Electronics", resp.Parent.Name)
}

func TestRootsAndSubcategories(t *testing.T) {
	categories := newMemCategories()
	parent := categories.add(model.Category{Name: "Electronics"})
	categories.add(model.Category{Name: "Phones", ParentCategoryID: &parent.ID})
	categories.add(model.Category{Name: "Office"})
	svc := NewCategoryService(categories)

	roots, err := svc.Roots(context.Background())
	require.NoError(t, err)
	assert.Len(t, roots, 2)

	subs, err := svc.Subcategories(context.Background(), parent.ID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "Phones", subs[0].Name)
}
