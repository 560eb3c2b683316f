package scenario

import "rent-or-buy/internal/model"

// Primary-residence capital-gain exemption (IRC §121).
const (
	gainExemptionSingle  = 250000.0
	gainExemptionMarried = 500000.0
)

// Owner simulates the homeowner trajectory: buy at year zero with a down
// payment, amortize the mortgage, pay ownership costs, invest the surplus.
type Owner struct {
	hh     model.HouseholdParams
	params model.SampledParams
	st     model.OwnerState

	purchasePrice float64
	payment       float64 // annual principal-and-interest
	income        float64
	costOfLiving  float64

	rows []YearRow
}

func NewOwner(hh model.HouseholdParams, params model.SampledParams, income float64) *Owner {
	price := params[model.ParamPropertyPrice]
	downPayment := price * hh.DownPaymentRate
	principal := price - downPayment
	return &Owner{
		hh:            hh,
		params:        params,
		purchasePrice: price,
		payment:       model.AnnualMortgagePayment(principal, params[model.ParamMortgageRate], hh.LoanTermYears),
		income:        income,
		costOfLiving:  params[model.ParamCostOfLiving],
		st: model.OwnerState{
			Principal: principal,
			HomeValue: price,
			Equity:    downPayment,
			// The down payment comes out of starting cash; whatever is left
			// joins the first year's surplus. A negative remainder is a
			// first-year shortfall drawn from (empty) stock holdings.
			Cash: hh.StartingCash - downPayment,
		},
	}
}

func (o *Owner) Name() string { return "homeowner" }

func (o *Owner) Step(year int) {
	st := &o.st

	// 1. Amortize. The payoff year charges interest plus the remaining
	// principal; afterwards the mortgage is gone and payments stop.
	outlay := 0.0
	if st.Principal > 0 {
		interest := st.Principal * o.params[model.ParamMortgageRate]
		principalDue := o.payment - interest
		if principalDue >= st.Principal {
			outlay = interest + st.Principal
			st.Principal = 0
		} else {
			outlay = o.payment
			st.Principal -= principalDue
		}
	}

	// 2. Appreciate, then 3. ownership costs on the current value.
	st.HomeValue *= 1 + o.params[model.ParamHousingGrowth]
	tax := st.HomeValue * o.params[model.ParamPropertyTaxRate]
	maintenance := st.HomeValue * o.params[model.ParamMaintenanceRate]
	housingCost := outlay + tax + maintenance

	// 4. Invest the surplus. Uninvested cash from the previous year (the
	// post-down-payment remainder in year zero) is swept in here.
	surplus := o.income - housingCost - o.costOfLiving + st.Cash
	st.Cash = 0
	investAndGrow(&st.Stocks, &st.StockBasis, surplus, o.params[model.ParamStockReturn])

	// 5. Record equity; it is not itself invested.
	st.Equity = st.HomeValue - st.Principal

	o.rows = append(o.rows, YearRow{
		Year:         year,
		Scenario:     o.Name(),
		Income:       o.income,
		HousingCost:  housingCost,
		CostOfLiving: o.costOfLiving,
		Surplus:      surplus,
		Action:       model.ActionFromSurplus(surplus),
		HomeValue:    st.HomeValue,
		Principal:    st.Principal,
		Equity:       st.Equity,
		Stocks:       st.Stocks,
	})

	o.income *= 1 + o.params[model.ParamIncomeGrowth]
	o.costOfLiving *= 1 + o.params[model.ParamCOLGrowth]
}

// Liquidate sells the home (selling costs, capital-gains tax on appreciation
// above the purchase price net of the primary-residence exemption, mortgage
// payoff) and liquidates stock holdings.
func (o *Owner) Liquidate() float64 {
	st := o.st

	gain := st.HomeValue - o.purchasePrice
	exemption := gainExemptionSingle
	if o.hh.Married {
		exemption = gainExemptionMarried
	}
	taxableGain := gain - exemption
	if taxableGain < 0 {
		taxableGain = 0
	}
	gainTax := taxableGain * o.hh.CapitalGainsRate
	sellingCost := st.HomeValue * o.hh.SellingCostRate

	saleProceeds := st.HomeValue - st.Principal - sellingCost - gainTax
	return saleProceeds + liquidateStocks(st.Stocks, st.StockBasis, o.hh.CapitalGainsRate) + st.Cash
}

func (o *Owner) Ledger() []YearRow { return o.rows }
