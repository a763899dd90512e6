package records

// Account is an account record as stored by the record service. The
// password and the `authorizacion` flag spelling are the service's own;
// this system consumes them read-only.
type Account struct {
	Id            int    `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Type          string `json:"type"`
	Authorization bool   `json:"authorizacion"`
}

type Document struct {
	Id        int    `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	Url       string `json:"url"`
	CreatedAt string `json:"createdAt"`
}

type Authorization struct {
	Id         int    `json:"id"`
	DocumentId int    `json:"documentId"`
	AccountId  int    `json:"accountId"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	SignedAt   string `json:"signedAt,omitempty"`
}

type Link struct {
	Id         int    `json:"id"`
	DocumentId int    `json:"documentId"`
	Url        string `json:"url"`
	ExpiresAt  string `json:"expiresAt,omitempty"`
}

// SignatureKey is a signing key pair reference; the private half never
// leaves the record service
type SignatureKey struct {
	Id         int    `json:"id"`
	SignerName string `json:"signerName"`
	PublicKey  string `json:"publicKey"`
	CreatedAt  string `json:"createdAt"`
}
