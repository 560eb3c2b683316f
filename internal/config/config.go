package config

import (
	"errors"
	"fmt"
	"os"

	"rent-or-buy/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML). The same structs bind
// JSON for the API, so tags carry both.
type Config struct {
	Simulation SimulationConfig           `yaml:"simulation" json:"simulation"`
	Household  HouseholdConfig            `yaml:"household" json:"household"`
	Parameters map[string]model.ParamSpec `yaml:"parameters" json:"parameters"`
}

type SimulationConfig struct {
	Runs         int   `yaml:"runs" json:"runs"`
	HorizonYears int   `yaml:"horizon_years" json:"horizon_years"`
	Seed         int64 `yaml:"seed" json:"seed"`
	Parallelism  int   `yaml:"parallelism" json:"parallelism"`
}

type HouseholdConfig struct {
	StartingCash          float64 `yaml:"starting_cash" json:"starting_cash"`
	AnnualIncome          float64 `yaml:"annual_income" json:"annual_income"`
	MortgageToIncomeRatio float64 `yaml:"mortgage_to_income_ratio" json:"mortgage_to_income_ratio"`
	DownPaymentRate       float64 `yaml:"down_payment_rate" json:"down_payment_rate"`
	LoanTermYears         int     `yaml:"loan_term_years" json:"loan_term_years"`
	MoveEveryYears        int     `yaml:"move_every_years" json:"move_every_years"`
	Married               bool    `yaml:"married" json:"married"`
	CapitalGainsRate      float64 `yaml:"capital_gains_rate" json:"capital_gains_rate"`
	SellingCostRate       float64 `yaml:"selling_cost_rate" json:"selling_cost_rate"`

	AssumeGoodLoan           bool `yaml:"assume_good_loan" json:"assume_good_loan"`
	AssumeGreatLoan          bool `yaml:"assume_great_loan" json:"assume_great_loan"`
	AssumeGoodHousingGrowth  bool `yaml:"assume_good_housing_growth" json:"assume_good_housing_growth"`
	AssumeGreatHousingGrowth bool `yaml:"assume_great_housing_growth" json:"assume_great_housing_growth"`
}

// Load reads, defaults and validates a config file.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	ApplyDefaults(c)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads config without defaulting or validation. Useful for
// debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	raw, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// ApplyDefaults fills zero-valued simulation/household fields and missing
// parameter specs from Default(). Explicit values always win.
func ApplyDefaults(c *Config) {
	def := Default()
	if c.Simulation.Runs == 0 {
		c.Simulation.Runs = def.Simulation.Runs
	}
	if c.Simulation.HorizonYears == 0 {
		c.Simulation.HorizonYears = def.Simulation.HorizonYears
	}
	if c.Simulation.Parallelism == 0 {
		c.Simulation.Parallelism = def.Simulation.Parallelism
	}
	if c.Household.StartingCash == 0 {
		c.Household.StartingCash = def.Household.StartingCash
	}
	if c.Household.MortgageToIncomeRatio == 0 {
		c.Household.MortgageToIncomeRatio = def.Household.MortgageToIncomeRatio
	}
	if c.Household.DownPaymentRate == 0 {
		c.Household.DownPaymentRate = def.Household.DownPaymentRate
	}
	if c.Household.LoanTermYears == 0 {
		c.Household.LoanTermYears = def.Household.LoanTermYears
	}
	// move_every_years: 0 takes the default, negative means "never move"
	// (mapped to 0 in the model).
	if c.Household.MoveEveryYears == 0 {
		c.Household.MoveEveryYears = def.Household.MoveEveryYears
	}
	if c.Household.CapitalGainsRate == 0 {
		c.Household.CapitalGainsRate = def.Household.CapitalGainsRate
	}
	if c.Household.SellingCostRate == 0 {
		c.Household.SellingCostRate = def.Household.SellingCostRate
	}
	if c.Parameters == nil {
		c.Parameters = map[string]model.ParamSpec{}
	}
	for name, spec := range def.Parameters {
		if _, ok := c.Parameters[name]; !ok {
			c.Parameters[name] = spec
		}
	}
}

// Validate fails fast on anything that makes the scenario ill-specified.
// Nothing inside a run can fail after this passes.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Simulation.ToModel().Validate(); err != nil {
		return err
	}
	if err := c.Household.ToModel().Validate(); err != nil {
		return err
	}
	if len(c.Parameters) == 0 {
		return errors.New("no parameters configured")
	}
	for name, spec := range c.Parameters {
		if err := spec.Validate(name); err != nil {
			return err
		}
		if spec.DeriveFrom != "" {
			base, ok := c.Parameters[spec.DeriveFrom]
			if !ok {
				return fmt.Errorf("parameter %q derives from unknown parameter %q", name, spec.DeriveFrom)
			}
			// Single-level derivation only; chains have no use here and
			// would complicate resolution ordering.
			if base.DeriveFrom != "" {
				return fmt.Errorf("parameter %q derives from derived parameter %q", name, spec.DeriveFrom)
			}
		}
	}
	for _, required := range model.RequiredParams() {
		if _, ok := c.Parameters[required]; !ok {
			return fmt.Errorf("required parameter %q is not configured", required)
		}
	}
	return nil
}

func (s SimulationConfig) ToModel() model.SimulationParams {
	return model.SimulationParams{
		Runs:         s.Runs,
		HorizonYears: s.HorizonYears,
		Seed:         s.Seed,
		Parallelism:  s.Parallelism,
	}
}

func (h HouseholdConfig) ToModel() model.HouseholdParams {
	moveEvery := h.MoveEveryYears
	if moveEvery < 0 {
		moveEvery = 0
	}
	return model.HouseholdParams{
		StartingCash:             h.StartingCash,
		AnnualIncome:             h.AnnualIncome,
		MortgageToIncomeRatio:    h.MortgageToIncomeRatio,
		DownPaymentRate:          h.DownPaymentRate,
		LoanTermYears:            h.LoanTermYears,
		MoveEveryYears:           moveEvery,
		Married:                  h.Married,
		CapitalGainsRate:         h.CapitalGainsRate,
		SellingCostRate:          h.SellingCostRate,
		AssumeGoodLoan:           h.AssumeGoodLoan,
		AssumeGreatLoan:          h.AssumeGreatLoan,
		AssumeGoodHousingGrowth:  h.AssumeGoodHousingGrowth,
		AssumeGreatHousingGrowth: h.AssumeGreatHousingGrowth,
	}
}
