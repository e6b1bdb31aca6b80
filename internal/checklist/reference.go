package checklist

import (
	"slices"

	"cloud.google.com/go/civil"
)

// ReferenceRow is one line of a static reference table. Rows with an empty
// Group continue the group of the row above.
type ReferenceRow struct {
	Group string
	Item  string
	When  string
	Note  string

	// Dated rows carry a deadline relative to the anchor date.
	Dated      bool
	OffsetDays int
}

// Deadline returns the row's deadline for anchor. ok is false for rows
// without a date or when anchor is nil.
func (r ReferenceRow) Deadline(anchor *civil.Date) (civil.Date, bool) {
	if !r.Dated || anchor == nil {
		return civil.Date{}, false
	}

	return anchor.AddDays(-r.OffsetDays), true
}

// PassportReference returns the passport and visa reference table.
func PassportReference() []ReferenceRow {
	return slices.Clone(passportReference)
}

// MedicalTips returns the health inspection tips table.
func MedicalTips() []ReferenceRow {
	return slices.Clone(medicalTips)
}

var passportReference = []ReferenceRow{
	{Group: "Passaporte Titular", Item: "Preencher requerimento eletrônico de passaporte", When: "Assim que tiver a portaria", Note: "formulário-autoridades.serpro.gov.br"},
	{Group: "", Item: "Imprimir e assinar RER", When: "Logo após gerar o RER", Note: "Assinar e colar foto"},
	{Group: "", Item: "Incluir Ficha de Controle", When: "Após emissão do RER", Note: "Processo físico enviado ao EMAER"},
	{Group: "", Item: "Incluir Identidade militar autenticada", When: "Após emissão do RER", Note: "Processo físico enviado ao EMAER"},
	{Group: "", Item: "Incluir Documento de naturalidade", When: "Após emissão do RER", Note: "Processo físico enviado ao EMAER"},
	{Group: "", Item: "Incluir Foto 5x7", When: "Após emissão do RER", Note: "Processo físico enviado ao EMAER"},
	{Group: "", Item: "Incluir Certidão de quitação eleitoral", When: "Após emissão do RER", Note: "Processo físico enviado ao EMAER"},
	{Group: "", Item: "Incluir Termo de devolução do passaporte anterior", When: "Após emissão do RER", Note: "Processo físico enviado ao EMAER"},
	{Group: "Passaporte Marido/Esposa", Item: "Preencher requerimento eletrônico de passaporte", When: "Assim que possível", Note: "formulário-autoridades.serpro.gov.br"},
	{Group: "", Item: "Imprimir e assinar RER", When: "Logo após gerar o RER", Note: "Assinar e colar foto"},
	{Group: "", Item: "Incluir Ficha de Controle", When: "Após emissão do RER", Note: "Processo físico enviado ao EMAER"},
	{Group: "", Item: "Incluir Identidade civil autenticada (RG ou CNH)", When: "Após emissão do RER", Note: "Processo físico enviado ao EMAER"},
	{Group: "", Item: "Incluir Documento de naturalidade (Certidão de Nascimento ou Casamento)", When: "Após emissão do RER", Note: "Processo físico enviado ao EMAER"},
	{Group: "", Item: "Incluir Foto 5x7", When: "Após emissão do RER", Note: "Processo físico enviado ao EMAER"},
	{Group: "", Item: "Incluir Certidão de quitação eleitoral", When: "Após emissão do RER", Note: "Processo físico enviado ao EMAER"},
	{Group: "Passaporte Filho/Filha", Item: "Preencher requerimento eletrônico de passaporte", When: "Assim que possível", Note: "formulário-autoridades.serpro.gov.br"},
	{Group: "", Item: "Imprimir e assinar RER (responsável assina)", When: "Logo após gerar o RER", Note: "Assinar e colar foto (responsável)"},
	{Group: "", Item: "Incluir Ficha de Controle", When: "Após emissão do RER", Note: "Processo físico enviado ao EMAER"},
	{Group: "", Item: "Incluir Certidão de Nascimento autenticada", When: "Após emissão do RER", Note: "Processo físico enviado ao EMAER"},
	{Group: "", Item: "Incluir Documento de naturalidade (Certidão de Nascimento)", When: "Após emissão do RER", Note: "Processo físico enviado ao EMAER"},
	{Group: "", Item: "Preencher Formulário de Autorização para emissão de passaporte de menor Assinado por ambos os pais, reconhecer firma em cartório", When: "Assinado por ambos os pais, reconhecer firma em cartório", Note: "Anexar ao processo físico da filha enviado ao EMAER"},
	{Group: "", Item: "Incluir Foto 5x7", When: "Após emissão do RER", Note: "Processo físico enviado ao EMAER"},
	{Group: "Visto A-2 Titular", Item: "Preencher formulário DS-160", When: "Até 30 dias antes da missão", Note: "ceac.state.gov", OffsetDays: 30, Dated: true},
	{Group: "", Item: "Imprimir confirmação DS-160", When: "Após preenchimento DS-160", Note: "Juntar ao processo"},
	{Group: "", Item: "Incluir Ficha de Controle Solicitação", When: "Após obtenção do passaporte", Note: "Enviar ao EMAER"},
	{Group: "", Item: "Incluir Portaria de Designação", When: "Após obtenção do passaporte", Note: "Enviar ao EMAER"},
	{Group: "", Item: "Incluir Passaporte oficial ou diplomático válido", When: "Após obtenção do passaporte", Note: "Enviar ao EMAER"},
	{Group: "", Item: "Incluir Cópias das páginas 2 e 3 do passaporte", When: "Após obtenção do passaporte", Note: "Enviar ao EMAER"},
	{Group: "Visto A-2 Titular", Item: "Incluir Foto 5x7", When: "Após obtenção do passaporte", Note: "Enviar ao EMAER"},
	{Group: "", Item: "Preencher formulário DS-160", When: "Após obtenção do passaporte", Note: "ceac.state.gov"},
	{Group: "", Item: "Imprimir confirmação DS-160", When: "Após preenchimento DS-160", Note: "Juntar ao processo"},
	{Group: "", Item: "Incluir cópia do passaporte oficial", When: "Após obtenção do passaporte", Note: "Enviar ao EMAER"},
	{Group: "", Item: "Incluir Cópia das páginas 2 e 3 do passaporte", When: "Após obtenção do passaporte", Note: "Enviar ao EMAER"},
	{Group: "", Item: "Incluir Foto 5x7", When: "Após obtenção do passaporte", Note: "Enviar ao EMAER"},
	{Group: "Visto A-2 Filha", Item: "Preencher formulário DS-160", When: "Após obtenção do passaporte", Note: "ceac.state.gov"},
	{Group: "", Item: "Imprimir confirmação DS-160", When: "Após preenchimento DS-160", Note: "Juntar ao processo"},
	{Group: "", Item: "Incluir cópia do passaporte oficial", When: "Após obtenção do passaporte", Note: "Enviar ao EMAER"},
	{Group: "", Item: "Incluir Cópia das páginas 2 e 3 do passaporte", When: "Após obtenção do passaporte", Note: "Enviar ao EMAER"},
	{Group: "", Item: "Incluir Foto 5x7", When: "Após obtenção do passaporte", Note: "Enviar ao EMAER"},
}

var medicalTips = []ReferenceRow{
	{Group: "Pré-inspeção", Item: "Realizar INSPSAU 120 dias antes do embarque", Note: ""},
	{Group: "", Item: "Jejum de 10-12h para coleta de exames", Note: ""},
	{Group: "", Item: "Finalizar tratamentos médicos e odontológicos prévios", Note: ""},
	{Group: "", Item: "Carteira de vacinação atualizada", Note: "Hepatite B, Febre Amarela e Tétano em dia"},
	{Group: "Recomendações gerais", Item: "Agendar Teste Ergométrico", Note: "Obrigatório a partir de 35 anos"},
	{Group: "", Item: "Agendar Radiografia Panorâmica Oral", Note: ""},
	{Group: "", Item: "Realizar EPF (sangue oculto nas fezes)", Note: "> 40 anos obrigatório"},
	{Group: "", Item: "Revisão odontológica / finalização de tratamentos", Note: ""},
	{Group: "", Item: "Atualizar Carteira de Vacinação", Note: ""},
	{Group: "Recomendações específicas - Mulheres", Item: "Avaliação ginecológica e exames ginecológicos", Note: "Obrigatório se vida sexual iniciada. Papanicolau válido por 180 dias"},
	{Group: "Exames clínicos obrigatórios", Item: "Exame médico geral (altura, peso, IMC, PA, FC)", Note: ""},
	{Group: "", Item: "Exame oftalmológico completo", Note: ""},
	{Group: "", Item: "Otorrino com audiometria tonal aérea", Note: "Validade máxima: 180 dias"},
	{Group: "", Item: "Exame odontológico com radiografia panorâmica", Note: ""},
	{Group: "", Item: "Exame psiquiátrico + questionários L e M", Note: ""},
	{Group: "", Item: "Exame neurológico (EEG se indicado)", Note: "EEG às quintas, se indicado"},
	{Group: "", Item: "Exame ginecológico", Note: ""},
	{Group: "", Item: "ECG em repouso (a partir de 12 anos)", Note: ""},
	{Group: "", Item: "Teste ergométrico (>= 35 anos)", Note: "Trazer resultado no dia"},
	{Group: "", Item: "Radiografia de tórax (PA e perfil)", Note: ""},
	{Group: "Exames laboratoriais - até 35 anos", Item: "Hemograma completo", Note: ""},
	{Group: "", Item: "Glicose, ureia, creatinina", Note: ""},
	{Group: "", Item: "Grupo sanguíneo e fator Rh", Note: ""},
	{Group: "", Item: "VDRL (e FTA-ABS se positivo)", Note: ""},
	{Group: "", Item: "Anti-HIV (com confirmação se positivo)", Note: ""},
	{Group: "", Item: "EAS (urina tipo 1)", Note: ""},
	{Group: "", Item: "Beta-HCG (para mulheres)", Note: ""},
	{Group: "Exames laboratoriais - mulheres", Item: "Colesterol total, HDL, LDL, triglicérides", Note: "Válido por 180 dias"},
	{Group: "Exames laboratoriais - acima de 35 anos", Item: "Ácido úrico", Note: ""},
	{Group: "", Item: "PSA total (>= 45 anos)", Note: ""},
	{Group: "", Item: "PSA livre (se PSA total > 2,5)", Note: ""},
	{Group: "", Item: "Hemoglobina glicada (se aplicável)", Note: ""},
	{Group: "Vacinas obrigatórias", Item: "Vacina Febre Amarela", Note: ""},
	{Group: "", Item: "Vacina Antitetânica", Note: ""},
	{Group: "", Item: "Vacina Hepatite B", Note: ""},
	{Group: "", Item: "Vacina COVID-19", Note: ""},
	{Group: "Dependentes < 12 anos", Item: "Relatório do pediatra", Note: "Será feito no dia da inspeção"},
	{Group: "", Item: "Carteira de Vacinação da criança", Note: "Cópia da caderneta"},
	{Group: "", Item: "Exames sob critério clínico", Note: ""},
}