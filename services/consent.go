package services

import "storefront-api/errs"

// RequireConsent gates form submissions that carry their own consent
// checkbox, such as registration. The checkbox is independent of the sitewide
// banner choice: an accepted banner does not stand in for an unchecked box.
func RequireConsent(checked bool) error {
	if !checked {
		return &errs.ConsentRequiredError{}
	}
	return nil
}
