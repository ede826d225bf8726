// Package i18n resolves request locales and holds the enumerated
// {locale, key} -> message table. Unknown locales are a validation error,
// never a silent default.
package i18n

import (
	"fmt"

	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/domain"
	"golang.org/x/text/language"
)

// Locale is a supported response language.
type Locale string

const (
	LocaleEN Locale = "en"
	LocalePL Locale = "pl"
)

// Message keys.
const (
	KeyRateLimitOrder          = "rate_limit.order"
	KeyRateLimitJobApplication = "rate_limit.job_application"
	KeyRateLimitNewsletter     = "rate_limit.newsletter"

	KeySubscribed   = "newsletter.subscribed"
	KeyVerified     = "newsletter.verified"
	KeyRegenerated  = "newsletter.regenerated"
	KeyUnsubscribed = "newsletter.unsubscribed"

	KeyVerificationSubject = "mail.verification.subject"
	KeyVerificationBody    = "mail.verification.body"
	KeyWelcomeSubject      = "mail.welcome.subject"
	KeyWelcomeBody         = "mail.welcome.body"
	KeyGoodbyeSubject      = "mail.goodbye.subject"
	KeyGoodbyeBody         = "mail.goodbye.body"

	KeyErrInternal           = "err.internal"
	KeyErrBadRequest         = "err.bad_request"
	KeyErrUnauthorized       = "err.unauthorized"
	KeyErrForbidden          = "err.forbidden"
	KeyErrNotFound           = "err.not_found"
	KeyErrConflict           = "err.conflict"
	KeyErrSubscriberExists   = "err.subscriber_exists"
	KeyErrSubscriberNotFound = "err.subscriber_not_found"
	KeyErrOtpMismatch        = "err.otp_mismatch"
	KeyErrOtpExpired         = "err.otp_expired"
	KeyErrOtpCooldown        = "err.otp_cooldown"
	KeyErrDiscountExists     = "err.discount_exists"
	KeyErrDiscountNotFound   = "err.discount_not_found"
	KeyErrDiscountExpired    = "err.discount_expired"
)

// messages is loaded once at startup. Body templates take fmt verbs; use
// Messagef for those.
var messages = map[Locale]map[string]string{
	LocaleEN: {
		KeyRateLimitOrder:          "You can place an order at most once every 5 minutes. Please try again later.",
		KeyRateLimitJobApplication: "You can submit a job application at most once every 5 minutes. Please try again later.",
		KeyRateLimitNewsletter:     "You can subscribe to the newsletter at most once every 5 minutes. Please try again later.",

		KeySubscribed:   "Subscribed! Check your mailbox for the verification code.",
		KeyVerified:     "Subscription verified. Welcome aboard!",
		KeyRegenerated:  "A new verification code is on its way to your mailbox.",
		KeyUnsubscribed: "You have been unsubscribed. We are sorry to see you go.",

		KeyVerificationSubject: "Confirm your newsletter subscription",
		KeyVerificationBody:    "Hi %s!\n\nYour verification code is %d. It is valid for 10 minutes.",
		KeyWelcomeSubject:      "Welcome to our newsletter",
		KeyWelcomeBody:         "Hi %s!\n\nYour subscription is now active. Expect fresh kebab news soon.",
		KeyGoodbyeSubject:      "Goodbye from our newsletter",
		KeyGoodbyeBody:         "Hi %s!\n\nYou have been unsubscribed. Come back any time.",

		KeyErrInternal:           "Something went wrong on our side. Please try again later.",
		KeyErrBadRequest:         "Invalid request.",
		KeyErrUnauthorized:       "Invalid credentials.",
		KeyErrForbidden:          "You do not have access to this resource.",
		KeyErrNotFound:           "Resource not found.",
		KeyErrConflict:           "Resource already exists.",
		KeyErrSubscriberExists:   "This email address is already subscribed.",
		KeyErrSubscriberNotFound: "No subscription found for this email address.",
		KeyErrOtpMismatch:        "The verification code is incorrect.",
		KeyErrOtpExpired:         "The verification code has expired. Please request a new one.",
		KeyErrOtpCooldown:        "A new code was requested too recently. Try again in %d seconds.",
		KeyErrDiscountExists:     "A discount code with this value already exists.",
		KeyErrDiscountNotFound:   "Discount code not found.",
		KeyErrDiscountExpired:    "This discount code has expired.",
	},
	LocalePL: {
		KeyRateLimitOrder:          "Zamówienie można złożyć najwyżej raz na 5 minut. Spróbuj ponownie później.",
		KeyRateLimitJobApplication: "Aplikację o pracę można wysłać najwyżej raz na 5 minut. Spróbuj ponownie później.",
		KeyRateLimitNewsletter:     "Do newslettera można zapisać się najwyżej raz na 5 minut. Spróbuj ponownie później.",

		KeySubscribed:   "Zapisano! Sprawdź skrzynkę, wysłaliśmy kod weryfikacyjny.",
		KeyVerified:     "Subskrypcja zweryfikowana. Witamy na pokładzie!",
		KeyRegenerated:  "Nowy kod weryfikacyjny jest w drodze na Twoją skrzynkę.",
		KeyUnsubscribed: "Wypisano z newslettera. Szkoda, że nas opuszczasz.",

		KeyVerificationSubject: "Potwierdź subskrypcję newslettera",
		KeyVerificationBody:    "Cześć %s!\n\nTwój kod weryfikacyjny to %d. Jest ważny przez 10 minut.",
		KeyWelcomeSubject:      "Witamy w naszym newsletterze",
		KeyWelcomeBody:         "Cześć %s!\n\nTwoja subskrypcja jest aktywna. Świeże kebabowe nowości już wkrótce.",
		KeyGoodbyeSubject:      "Do zobaczenia",
		KeyGoodbyeBody:         "Cześć %s!\n\nWypisaliśmy Cię z newslettera. Wróć kiedy chcesz.",

		KeyErrInternal:           "Coś poszło nie tak po naszej stronie. Spróbuj ponownie później.",
		KeyErrBadRequest:         "Nieprawidłowe żądanie.",
		KeyErrUnauthorized:       "Nieprawidłowe dane logowania.",
		KeyErrForbidden:          "Nie masz dostępu do tego zasobu.",
		KeyErrNotFound:           "Nie znaleziono zasobu.",
		KeyErrConflict:           "Zasób już istnieje.",
		KeyErrSubscriberExists:   "Ten adres e-mail jest już zapisany do newslettera.",
		KeyErrSubscriberNotFound: "Nie znaleziono subskrypcji dla tego adresu e-mail.",
		KeyErrOtpMismatch:        "Kod weryfikacyjny jest nieprawidłowy.",
		KeyErrOtpExpired:         "Kod weryfikacyjny wygasł. Poproś o nowy.",
		KeyErrOtpCooldown:        "Nowy kod został wygenerowany zbyt niedawno. Spróbuj ponownie za %d sekund.",
		KeyErrDiscountExists:     "Kod rabatowy o tej wartości już istnieje.",
		KeyErrDiscountNotFound:   "Nie znaleziono kodu rabatowego.",
		KeyErrDiscountExpired:    "Ten kod rabatowy wygasł.",
	},
}

// Message returns the message for the given locale and key. The locale must
// have passed ResolveAcceptLanguage; an unknown key is a programming error
// and returns the key itself so it is visible in responses.
func Message(loc Locale, key string) string {
	if m, ok := messages[loc]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	return key
}

// Messagef renders a templated message with fmt arguments.
func Messagef(loc Locale, key string, args ...interface{}) string {
	return fmt.Sprintf(Message(loc, key), args...)
}

// ResolveAcceptLanguage parses an Accept-Language header value and resolves
// it to a supported Locale. The resolved base language must be exactly "en"
// or "pl" (case-insensitive); anything else, including an empty header, is
// domain.ErrInvalidLocale.
func ResolveAcceptLanguage(header string) (Locale, error) {
	if header == "" {
		return "", domain.ErrInvalidLocale
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", domain.ErrInvalidLocale
	}
	for _, tag := range tags {
		base, conf := tag.Base()
		if conf == language.No {
			continue
		}
		switch base.String() {
		case "en":
			return LocaleEN, nil
		case "pl":
			return LocalePL, nil
		}
	}
	return "", domain.ErrInvalidLocale
}
