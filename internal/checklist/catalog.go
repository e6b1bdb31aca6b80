package checklist

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// Category identifies one auto-derived checklist. The underlying value is the
// key prefix used for every task of the category ("pass" -> "pass-01").
type Category string

// Built-in categories.
const (
	Leave    Category = "ferias"
	Passport Category = "pass"
	Medical  Category = "insp"
	Payroll  Category = "pay"
	Housing  Category = "raire"
)

var categoryNames = map[Category]string{
	Leave:    "leave",
	Passport: "passport",
	Medical:  "medical",
	Payroll:  "payroll",
	Housing:  "housing",
}

// Categories returns the built-in categories in display order.
func Categories() []Category {
	return []Category{Leave, Passport, Medical, Payroll, Housing}
}

// Prefix returns the key prefix of the category.
func (c Category) Prefix() string {
	return string(c)
}

// Name returns the human name of a built-in category, or the prefix for
// categories that are not built in.
func (c Category) Name() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}

	return string(c)
}

// IsBuiltin reports whether c is one of the categories returned by Categories.
func (c Category) IsBuiltin() bool {
	_, ok := categoryNames[c]

	return ok
}

// ParseCategory accepts either the name ("passport") or the key prefix ("pass").
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	for c, name := range categoryNames {
		if s == name || s == string(c) {
			return c, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// TaskDefinition is one catalog entry. A positive offset places the deadline
// before the anchor date, a negative one after it.
type TaskDefinition struct {
	OffsetDays int
	Label      string
}

// Catalog is the ordered list of task definitions of one category.
// Order defines both display order and keys.
type Catalog struct {
	Category Category
	Tasks    []TaskDefinition
}

// Len returns the number of task definitions.
func (c Catalog) Len() int {
	return len(c.Tasks)
}

// Key is the stable identity of a resolved task: its category and its
// 1-based position in the catalog.
type Key struct {
	Category Category
	Index    int
}

// String formats the key as "{prefix}-{index:02d}".
func (k Key) String() string {
	return fmt.Sprintf("%s-%02d", k.Category.Prefix(), k.Index)
}

// legacyFlagPrefix is prepended to flag keys in files written by the first
// version of the checklist.
const legacyFlagPrefix = "done-"

// ParseKey parses a key of a built-in catalog. It accepts the legacy "done-"
// prefix and unpadded indices ("ferias-1"). The index must exist in the
// category's catalog.
func ParseKey(s string) (Key, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), legacyFlagPrefix)

	prefix, idxRaw, ok := strings.Cut(raw, "-")
	if !ok || prefix == "" || idxRaw == "" {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}

	cat := Category(prefix)
	if !cat.IsBuiltin() {
		return Key{}, fmt.Errorf("%w: %q (unknown category %q)", ErrInvalidKey, s, prefix)
	}

	idx, err := strconv.Atoi(idxRaw)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}

	if idx < 1 || idx > builtinCatalogs[cat].Len() {
		return Key{}, fmt.Errorf("%w: %q (index out of range 1-%d)", ErrInvalidKey, s, builtinCatalogs[cat].Len())
	}

	return Key{Category: cat, Index: idx}, nil
}

// parseFlagKey parses any well-formed flag key: an optional legacy "done-"
// prefix, a category prefix and a positive index. Unlike ParseKey the
// category need not be built in. legacy reports the "done-" spelling.
func parseFlagKey(s string) (key Key, legacy bool, ok bool) {
	if rest, cut := strings.CutPrefix(s, legacyFlagPrefix); cut {
		if key, ok := splitFlagKey(rest); ok {
			return key, true, true
		}
	}

	key, ok = splitFlagKey(s)

	return key, false, ok
}

func splitFlagKey(s string) (Key, bool) {
	i := strings.LastIndexByte(s, '-')
	if i <= 0 || i == len(s)-1 {
		return Key{}, false
	}

	prefix, idxRaw := s[:i], s[i+1:]
	if strings.ContainsFunc(prefix, unicode.IsSpace) {
		return Key{}, false
	}

	for _, r := range idxRaw {
		if r < '0' || r > '9' {
			return Key{}, false
		}
	}

	idx, err := strconv.Atoi(idxRaw)
	if err != nil || idx < 1 {
		return Key{}, false
	}

	return Key{Category: Category(prefix), Index: idx}, true
}

// flagKeyRank orders spellings of one key: bare beats "done-", and the
// padded "prefix-NN" form beats any other spelling of the index.
func flagKeyRank(raw string, key Key, legacy bool) int {
	rank := 0

	canonical := key.String()
	if legacy {
		canonical = legacyFlagPrefix + canonical
	} else {
		rank += 2
	}

	if raw == canonical {
		rank++
	}

	return rank
}

// CatalogFor returns the built-in catalog of c. The returned task slice is a
// copy.
func CatalogFor(c Category) (Catalog, bool) {
	cat, ok := builtinCatalogs[c]
	if !ok {
		return Catalog{}, false
	}

	return Catalog{Category: cat.Category, Tasks: slices.Clone(cat.Tasks)}, true
}

// Page is a manual-list category. Its Name is the key of the list in
// snapshots. A page may show one auto-derived catalog above its manual tasks.
type Page struct {
	Name    string
	Slug    string
	Catalog Category
}

// HasCatalog reports whether the page shows an auto-derived catalog.
func (p Page) HasCatalog() bool {
	return p.Catalog != ""
}

var builtinPages = []Page{
	{Name: "Antes da Missão", Slug: "before", Catalog: Leave},
	{Name: "Chegada na CABW", Slug: "arrival"},
	{Name: "INSPSAU (Inspeção de Saúde)", Slug: "medical", Catalog: Medical},
	{Name: "Pagamento", Slug: "payroll", Catalog: Payroll},
	{Name: "RAIRE", Slug: "housing", Catalog: Housing},
	{Name: "Passaporte e Visto", Slug: "passport", Catalog: Passport},
}

// Pages returns the built-in pages in navigation order.
func Pages() []Page {
	return slices.Clone(builtinPages)
}

// LookupPage finds a built-in page by exact name, slug, or 1-based position.
func LookupPage(s string) (Page, bool) {
	s = strings.TrimSpace(s)

	for _, p := range builtinPages {
		if p.Name == s || strings.EqualFold(p.Slug, s) {
			return p, true
		}
	}

	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(builtinPages) {
		return builtinPages[n-1], true
	}

	return Page{}, false
}

// PageNamed finds a built-in page by its exact name only.
func PageNamed(name string) (Page, bool) {
	i := slices.IndexFunc(builtinPages, func(p Page) bool { return p.Name == name })
	if i < 0 {
		return Page{}, false
	}

	return builtinPages[i], true
}

func isBuiltinPage(name string) bool {
	_, ok := PageNamed(name)

	return ok
}

var builtinCatalogs = map[Category]Catalog{
	Leave: {Category: Leave, Tasks: []TaskDefinition{
		{100, "Solicitar Férias no Portal do Militar"},
		{30, "Apresentação no Portal do Militar – INÍCIO de Férias"},
		{1, "Apresentação no Portal do Militar – TÉRMINO de Férias"},
	}},
	Passport: {Category: Passport, Tasks: []TaskDefinition{
		{180, "AGD – Fazer contato com o GAP-SJ para verificar possibilidade de passaporte pelo DECEA"},
		{155, "Agendar foto"},
		{150, "Elaborar Ofício de Apoio ao GAP-SJ solicitando apoio para emissão de passaporte"},
		{150, "Preencher o Formulário MRE (modelo militar) — 1 (uma) via para cada solicitante."},
		{150, "Preencher o Modelo de Autorização para Menor, caso aplicável."},
		{130, "Ofício de Apoio assinado"},
		{130, "FPP ou Portaria (se houver)"},
		{130, "RG Civil"},
		{130, "RG Militar"},
		{130, "CPF"},
		{130, "Certidão de Casamento ou Nascimento (se for o caso)"},
		{130, "Título de Eleitor"},
		{130, "Comprovante de Quitação Eleitoral"},
		{130, "Passaportes Oficiais anteriores, se tiver"},
		{130, "Fotos 5x7 cm (formato digital)"},
		{130, "Assinaturas digitalizadas (modelo em anexo no e-mail)"},
		{120, "Enviar por e-mail ao GAP-SJ (Seção de Passaportes): a) Formulários preenchidos; b) Arquivos digitais das fotos e assinaturas; c) Documentação digitalizada (PDF)"},
		{100, "Aguardar o envio dos Recibos MRE (enviados por e-mail após cadastro no sistema do Itamaraty)"},
		{100, "Envio/Entrega das Fotos, Recibos de Entrega e Passaportes antigos"},
		{100, "Aguardar recebimento das cópias dos Passaportes pelo ITAMARATY"},
		{100, "Preenchimento do Formulário DS-160"},
		{100, "Envio dos formulários em versão preto e branco para o GAP-SJ"},
		{70, "Receber os passaportes e vistos"},
	}},
	Medical: {Category: Medical, Tasks: []TaskDefinition{
		{180, "Marcar exames Preventivos (MULHER)"},
		{120, "Marcar Inspeção de Saúde (Letra F) para toda família"},
		{30, "Resultado da INSPSAU publicada em BCA e nas alterações"},
	}},
	Payroll: {Category: Payroll, Tasks: []TaskDefinition{
		{90, "Abrir conta bancária indicada pela Pagadoria para crédito no exterior"},
		{60, "Enviar dados bancários e portaria de designação à Pagadoria"},
		{45, "Solicitar adiantamento da ajuda de custo"},
		{30, "Conferir publicação da designação em BCA para cálculo da indenização"},
		{15, "Confirmar inclusão na folha de pagamento no exterior"},
	}},
	Housing: {Category: Housing, Tasks: []TaskDefinition{
		{30, "Reunir documentação exigida para o RAIRE (modelo de contrato de locação)"},
		{-15, "Assinar contrato de locação e enviar cópia à CABW"},
		{-30, "Solicitar o primeiro reembolso do RAIRE com os recibos do mês"},
	}},
}
