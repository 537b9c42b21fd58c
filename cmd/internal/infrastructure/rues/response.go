package rues

import "consultanit/cmd/internal/domain/source"

// Field names as returned inside "registros".
const (
	KeyRazonSocial          = "razon_social"
	KeyNumeroIdentificacion = "numero_identificacion"
	KeyDV                   = "dv"
	KeyCamara               = "camara"
	KeyMatricula            = "matricula"
	KeyEstado               = "estado"
	KeyFechaMatricula       = "fecha_matricula"
	KeyFechaRenovacion      = "fecha_renovacion"
	KeyUltimoAnoRenovado    = "ultimo_ano_renovado"
	KeyTipoSociedad         = "tipo_sociedad"
	KeyOrganizacionJuridica = "organizacion_juridica"
	KeyCodCIIUPrincipal     = "cod_ciiu_act_econ_pri"
	KeyDescCIIUPrincipal    = "desc_ciiu_act_econ_pri"
	KeyCodCIIUSecundario    = "cod_ciiu_act_econ_sec"
	KeyDescCIIUSecundario   = "desc_ciiu_act_econ_sec"
	KeyCIIU3                = "ciiu3"
	KeyDescCIIU3            = "desc_ciiu3"
	KeyCIIU4                = "ciiu4"
	KeyDescCIIU4            = "desc_ciiu4"
)

type detailResponse struct {
	ErrorCode    source.String   `json:"codigo_error"`
	ErrorMessage source.String   `json:"mensaje_error"`
	Record       *recordResponse `json:"registros"`
}

type recordResponse struct {
	LegalName            source.String `json:"razon_social"`
	IdentificationNumber source.String `json:"numero_identificacion"`
	VerificationDigit    source.String `json:"dv"`
	Chamber              source.String `json:"camara"`
	RegistrationNumber   source.String `json:"matricula"`
	Status               source.String `json:"estado"`
	RegistrationDate     source.String `json:"fecha_matricula"`
	RenewalDate          source.String `json:"fecha_renovacion"`
	LastRenewedYear      source.String `json:"ultimo_ano_renovado"`
	CompanyType          source.String `json:"tipo_sociedad"`
	LegalOrganization    source.String `json:"organizacion_juridica"`

	CIIUCode             source.String `json:"cod_ciiu_act_econ_pri"`
	CIIUDescription      source.String `json:"desc_ciiu_act_econ_pri"`
	SecondaryCode        source.String `json:"cod_ciiu_act_econ_sec"`
	SecondaryDescription source.String `json:"desc_ciiu_act_econ_sec"`
	ThirdCode            source.String `json:"ciiu3"`
	ThirdDescription     source.String `json:"desc_ciiu3"`
	FourthCode           source.String `json:"ciiu4"`
	FourthDescription    source.String `json:"desc_ciiu4"`
}

func (r *recordResponse) ToResult() source.Result {
	res := source.Result{}
	res.Set(KeyRazonSocial, string(r.LegalName))
	res.Set(KeyNumeroIdentificacion, string(r.IdentificationNumber))
	res.Set(KeyDV, string(r.VerificationDigit))
	res.Set(KeyCamara, string(r.Chamber))
	res.Set(KeyMatricula, string(r.RegistrationNumber))
	res.Set(KeyEstado, string(r.Status))
	res.Set(KeyFechaMatricula, string(r.RegistrationDate))
	res.Set(KeyFechaRenovacion, string(r.RenewalDate))
	res.Set(KeyUltimoAnoRenovado, string(r.LastRenewedYear))
	res.Set(KeyTipoSociedad, string(r.CompanyType))
	res.Set(KeyOrganizacionJuridica, string(r.LegalOrganization))
	res.Set(KeyCodCIIUPrincipal, string(r.CIIUCode))
	res.Set(KeyDescCIIUPrincipal, string(r.CIIUDescription))
	res.Set(KeyCodCIIUSecundario, string(r.SecondaryCode))
	res.Set(KeyDescCIIUSecundario, string(r.SecondaryDescription))
	res.Set(KeyCIIU3, string(r.ThirdCode))
	res.Set(KeyDescCIIU3, string(r.ThirdDescription))
	res.Set(KeyCIIU4, string(r.FourthCode))
	res.Set(KeyDescCIIU4, string(r.FourthDescription))
	return res
}
