package contract

// NitRequest carries the NIT to look up. It may come from the path,
// the query string or a JSON body.
type NitRequest struct {
	NIT string `json:"nit" query:"nit" param:"nit" validate:"required,nit"`
}
