package v1_test

import (
	"net/http"

	v1 "github.com/familybiz/backend/internal/controllers/v1"
	"github.com/familybiz/backend/internal/models"
	"github.com/familybiz/backend/internal/test"
)

func (suite *TestSuiteStandard) TestCategoriesListBuiltins() {
	r := suite.request(http.MethodGet, "/v1/categories?type=income", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotEmpty(response.Data)
	suite.Assert().Equal("sales", response.Data[0].ID)
}

func (suite *TestSuiteStandard) TestCategoriesTypeRequired() {
	for _, query := range []string{"", "?type=transfer"} {
		r := suite.request(http.MethodGet, "/v1/categories"+query, nil)
		suite.Assert().Equal(http.StatusBadRequest, r.Code)
	}
}

func (suite *TestSuiteStandard) TestCategoryCreateAndList() {
	r := suite.request(http.MethodPost, "/v1/categories", v1.CategoryEditable{
		Name: "Workshops",
		Icon: "🎓",
		Type: models.TransactionIncome,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var created v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &created)
	suite.Require().NotNil(created.Data)
	suite.Assert().NotEmpty(created.Data.ID)

	// Custom categories are listed after the built-ins
	r = suite.request(http.MethodGet, "/v1/categories?type=income", nil)
	var list v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Equal("Workshops", list.Data[len(list.Data)-1].Name)

	// But not for the other type
	r = suite.request(http.MethodGet, "/v1/categories?type=expense", nil)
	var expenses v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &expenses)
	for _, category := range expenses.Data {
		suite.Assert().NotEqual("Workshops", category.Name)
	}
}

func (suite *TestSuiteStandard) TestCategoryCreateValidated() {
	r := suite.request(http.MethodPost, "/v1/categories", v1.CategoryEditable{
		Name: "",
		Type: models.TransactionIncome,
	})
	suite.Assert().Equal(http.StatusBadRequest, r.Code)
}

func (suite *TestSuiteStandard) TestCategoryResolve() {
	r := suite.request(http.MethodGet, "/v1/categories/sales?type=income", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Product sales", response.Data.Name)
}

func (suite *TestSuiteStandard) TestCategoryResolveNotFound() {
	r := suite.request(http.MethodGet, "/v1/categories/does-not-exist?type=income", nil)
	suite.Assert().Equal(http.StatusNotFound, r.Code)
}

func (suite *TestSuiteStandard) TestCategoryDelete() {
	r := suite.request(http.MethodPost, "/v1/categories", v1.CategoryEditable{
		Name: "Workshops",
		Type: models.TransactionIncome,
	})
	var created v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &created)
	suite.Require().NotNil(created.Data)

	r = suite.request(http.MethodDelete, "/v1/categories/"+created.Data.ID, nil)
	suite.Assert().Equal(http.StatusNoContent, r.Code)

	r = suite.request(http.MethodGet, "/v1/categories/"+created.Data.ID+"?type=income", nil)
	suite.Assert().Equal(http.StatusNotFound, r.Code)
}
