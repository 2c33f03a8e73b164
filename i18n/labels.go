// Package i18n holds the static label table for the three POS display
// languages. It is pure lookup data; missing translations fall back to
// English.
package i18n

type Language string

const (
	English     Language = "en"
	French      Language = "fr"
	Kinyarwanda Language = "rw"
)

// Languages lists every supported display language.
var Languages = []Language{English, French, Kinyarwanda}

type LabelKey string

const (
	LabelReceiptHeader LabelKey = "receipt.header"
	LabelReceiptThanks LabelKey = "receipt.thanks"
	LabelSubtotal      LabelKey = "receipt.subtotal"
	LabelTax           LabelKey = "receipt.tax"
	LabelTotal         LabelKey = "receipt.total"
	LabelCashReceived  LabelKey = "receipt.cash_received"
	LabelChange        LabelKey = "receipt.change"
	LabelPaymentCash   LabelKey = "payment.cash"
	LabelPaymentMoMo   LabelKey = "payment.momo"
	LabelPaymentCard   LabelKey = "payment.card"
	LabelWalkIn        LabelKey = "customer.walk_in"
	LabelTransaction   LabelKey = "transaction.label"
)

// Keys lists every label key; tests range over it to prove the table is
// exhaustive.
var Keys = []LabelKey{
	LabelReceiptHeader,
	LabelReceiptThanks,
	LabelSubtotal,
	LabelTax,
	LabelTotal,
	LabelCashReceived,
	LabelChange,
	LabelPaymentCash,
	LabelPaymentMoMo,
	LabelPaymentCard,
	LabelWalkIn,
	LabelTransaction,
}

var labels = map[LabelKey]map[Language]string{
	LabelReceiptHeader: {
		English:     "Laundromat Receipt",
		French:      "Recu de la laverie",
		Kinyarwanda: "Inyemezabuguzi ya mesini",
	},
	LabelReceiptThanks: {
		English:     "Thank you for your business!",
		French:      "Merci de votre visite!",
		Kinyarwanda: "Murakoze!",
	},
	LabelSubtotal: {
		English:     "Subtotal",
		French:      "Sous-total",
		Kinyarwanda: "Igiteranyo",
	},
	LabelTax: {
		English:     "Tax (10%)",
		French:      "Taxe (10%)",
		Kinyarwanda: "Umusoro (10%)",
	},
	LabelTotal: {
		English:     "Total",
		French:      "Total",
		Kinyarwanda: "Igiteranyo rusange",
	},
	LabelCashReceived: {
		English:     "Cash received",
		French:      "Especes recues",
		Kinyarwanda: "Amafaranga yakiriwe",
	},
	LabelChange: {
		English:     "Change",
		French:      "Monnaie",
		Kinyarwanda: "Amafaranga asubizwa",
	},
	LabelPaymentCash: {
		English:     "Cash",
		French:      "Especes",
		Kinyarwanda: "Amafaranga",
	},
	LabelPaymentMoMo: {
		English:     "Mobile Money",
		French:      "Mobile Money",
		Kinyarwanda: "Mobile Money",
	},
	LabelPaymentCard: {
		English:     "Card",
		French:      "Carte",
		Kinyarwanda: "Ikarita",
	},
	LabelWalkIn: {
		English:     "Walk-in Customer",
		French:      "Client de passage",
		Kinyarwanda: "Umukiriya usanzwe",
	},
	LabelTransaction: {
		English:     "Transaction",
		French:      "Transaction",
		Kinyarwanda: "Igikorwa",
	},
}

// Label resolves a key for a language, falling back to English when the
// translation is missing.
func Label(key LabelKey, lang Language) string {
	translations, ok := labels[key]
	if !ok {
		return string(key)
	}
	if s, ok := translations[lang]; ok && s != "" {
		return s
	}
	return translations[English]
}
