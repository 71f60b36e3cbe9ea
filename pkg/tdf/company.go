package tdf

type CompanyRole string

const (
	CompanyRoleOperator CompanyRole = "Operator"
	CompanyRoleBuilder              = "Builder"
)

// Company binds an in-game company to the railway systems it operates or
// built. Bindings are maintained by admins, not imported from the game.
type Company struct {
	Identifier string `groups:"basic"`

	CreationDateTime     string `groups:"detail"`
	ModificationDateTime string `groups:"detail"`

	Name string `groups:"basic"`

	Role       CompanyRole `groups:"basic"`
	SystemRefs []string    `groups:"basic"`
}
