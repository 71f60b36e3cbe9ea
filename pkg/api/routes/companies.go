package routes

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/trackmap/trackmap/pkg/database"
	"github.com/trackmap/trackmap/pkg/tdf"
	"github.com/trackmap/trackmap/pkg/util"
	"go.mongodb.org/mongo-driver/bson"
)

func CompaniesRouter(router fiber.Router) {
	router.Get("/", listCompanies)
	router.Post("/", createCompanyBinding)
	router.Delete("/:identifier", deleteCompanyBinding)
}

// CompanyGroup collects all bindings of one company name: a company can
// appear once as operator and once as builder of different systems.
type CompanyGroup struct {
	Name     string         `json:"name"`
	Bindings []*tdf.Company `json:"bindings"`
}

func listCompanies(c *fiber.Ctx) error {
	page, pageSize, err := parsePagination(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	filter := bson.M{}

	if role := c.Query("role"); role != "" {
		filter["role"] = role
	}
	if system := c.Query("system"); system != "" {
		filter["systemrefs"] = system
	}

	companiesCollection := database.GetCollection("companies")
	cursor, err := companiesCollection.Find(context.Background(), filter)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to query Companies",
		})
	}

	var companies []*tdf.Company
	if err := cursor.All(context.Background(), &companies); err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to decode Companies",
		})
	}

	groups := groupCompaniesByName(companies)

	return c.JSON(fiber.Map{
		"groups":    util.PaginateSlice(groups, page, pageSize),
		"page":      page,
		"page_size": pageSize,
		"total":     len(groups),
	})
}

func groupCompaniesByName(companies []*tdf.Company) []*CompanyGroup {
	var groups []*CompanyGroup
	groupIndex := map[string]*CompanyGroup{}

	for _, company := range companies {
		group := groupIndex[company.Name]
		if group == nil {
			group = &CompanyGroup{Name: company.Name}
			groupIndex[company.Name] = group
			groups = append(groups, group)
		}

		group.Bindings = append(group.Bindings, company)
	}

	return groups
}

func createCompanyBinding(c *fiber.Ctx) error {
	var company tdf.Company
	if err := c.BodyParser(&company); err != nil {
		return badRequest(c, "Invalid Company body")
	}

	if company.Identifier == "" || company.Name == "" {
		return badRequest(c, "Company requires an identifier and a name")
	}

	if company.Role != tdf.CompanyRoleOperator && company.Role != tdf.CompanyRoleBuilder {
		return badRequest(c, "Company role must be Operator or Builder")
	}

	company.SystemRefs = util.RemoveDuplicateStrings(company.SystemRefs, nil)
	company.CreationDateTime = currentTimestamp()
	company.ModificationDateTime = company.CreationDateTime

	companiesCollection := database.GetCollection("companies")
	if _, err := companiesCollection.InsertOne(context.Background(), company); err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to create Company binding",
		})
	}

	c.SendStatus(fiber.StatusCreated)
	return c.JSON(company)
}

func deleteCompanyBinding(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	companiesCollection := database.GetCollection("companies")
	result, err := companiesCollection.DeleteOne(context.Background(), bson.M{"identifier": identifier})
	if err != nil || result.DeletedCount == 0 {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Company matching Identifier",
		})
	}

	return c.JSON(fiber.Map{
		"deleted": identifier,
	})
}
