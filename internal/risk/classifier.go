// Package risk classifies a built SQL statement into a risk tier.
// Classification operates purely on the statement's syntactic shape,
// never on the intent that produced it, and it never fails: an
// unrecognized shape degrades to the most conservative tier.
package risk

import "github.com/alexanderramin/dbtalk/internal/domain"

// Assessment is the result of classifying one statement. Produced
// fresh per statement; never cached, never mutated.
type Assessment struct {
	Safe   bool
	Tier   domain.RiskTier
	Reason string
}

// Classify applies the first matching policy rule, most severe first.
func Classify(stmt domain.Statement) Assessment {
	action := stmt.Action
	if action == "" {
		action = domain.LeadingKeyword(stmt.SQL)
	}

	switch action {
	case domain.ActionDrop:
		return assessment(domain.RiskHigh, "irreversibly removes a table and all of its data")
	case domain.ActionDelete:
		if !stmt.HasWhere() {
			return assessment(domain.RiskHigh, "deletes all rows unconditionally")
		}
		return assessment(domain.RiskMedium, "deletes matching rows")
	case domain.ActionUpdate:
		if !stmt.HasWhere() {
			return assessment(domain.RiskHigh, "updates all rows unconditionally")
		}
		return assessment(domain.RiskMedium, "updates matching rows")
	case domain.ActionCreate:
		return assessment(domain.RiskLow, "creating a table is low risk")
	case domain.ActionInsert:
		return assessment(domain.RiskLow, "adding new data is low risk")
	case domain.ActionSelect:
		return assessment(domain.RiskLow, "reading data is low risk")
	default:
		// Unknown shape: degrade to the most conservative tier.
		return assessment(domain.RiskHigh, "unrecognized statement, treating as dangerous")
	}
}

func assessment(tier domain.RiskTier, reason string) Assessment {
	return Assessment{
		Safe:   tier == domain.RiskLow,
		Tier:   tier,
		Reason: reason,
	}
}
