package billing

// TransferDetails are the bank coordinates shown for invoices awaiting payment
type TransferDetails struct {
	Bank    string `json:"bank"`
	Account string `json:"account"`
	CBU     string `json:"cbu"`
	Holder  string `json:"holder"`
}

// VendorTransferDetails returns Enternet's receiving bank account
func VendorTransferDetails() TransferDetails {
	return TransferDetails{
		Bank:    "Banco Nacional",
		Account: "123-456789-0",
		CBU:     "1234567890123456789012",
		Holder:  "Enternet S.A.",
	}
}
