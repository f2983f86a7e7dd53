package services

import (
	"fmt"
	"strings"

	"legal_wizard_go/models"
)

const extractionInstruction = `أنت مساعد قانوني متخصص في قراءة الوثائق الإدارية والقضائية المغربية.
مهمتك استخراج بيانات الموكل والقضية من المستند المرفق فقط، دون تخمين.
إذا لم تجد معلومة فاترك الحقل فارغاً.`

const extractionPrompt = `استخرج من المستند المرفق البيانات التالية وأعدها بصيغة JSON مطابقة للمخطط:
- client: fullName, dob, cin, address, bankAccount
- case: type, references, fees, advance, costs
احتفظ بالأسماء والأرقام كما وردت في المستند.`

const draftingInstruction = `أنت محامٍ مغربي متمرس تصوغ الوثائق القانونية باللغة العربية الفصحى.
أعد فقط جزء HTML صالحاً (بدون html أو head أو body وبدون Markdown)،
باستعمال العناصر h1 و h2 و p و ul و ol و table فقط، مع dir="rtl" على العنصر الجذري.
اترك سطراً منقطاً (..........) مكان كل معلومة غير متوفرة، ولا تخترع أي معطى.
اختم الوثيقة بفقرة للتوقيعات داخل عنصر يحمل class="signature-block".`

// draftGuidance describes what each document must contain
var draftGuidance = map[models.DocumentType]string{
	models.DocumentTypeFeeAgreement: `اتفاقية أتعاب بين المحامي والموكل تحدد موضوع النيابة،
مبلغ الأتعاب، التسبيق المدفوع، الباقي، المصاريف وطريقة الأداء، ومآل الأتعاب عند فسخ الاتفاق.`,
	models.DocumentTypeAdminPowerOfAttorney: `وكالة خاصة يمنح بموجبها الموكل للوكيل صلاحية القيام بالإجراءات
الإدارية والعقارية المحددة (المحافظة العقارية، الإدارات العمومية، تسلم الوثائق والتوقيع عليها).`,
	models.DocumentTypeJudicialPowerOfAttorney: `وكالة خاصة قضائية تخول المحامي تمثيل الموكل أمام المحاكم
في القضية المحددة بمراجعها، بما في ذلك تقديم المقالات والمذكرات وممارسة طرق الطعن.`,
	models.DocumentTypeGeneralPowerOfAttorney: `وكالة عامة تخول الوكيل النيابة عن الموكل في جميع أعمال الإدارة
والتصرف المسموح بها قانوناً، مع بيان حدود الوكالة ومدتها.`,
	models.DocumentTypeIncidentalRequest: `مذكرة طلب عارض موجهة إلى المحكمة المختصة في الملف المشار إليه،
تتضمن الوقائع، الطلبات العارضة، الأسانيد القانونية والملتمسات.`,
}

const missingValue = ".........."

// BuildDraftPrompt composes the drafting request for one document type.
// Blank fields are shown as dotted placeholders so the model keeps them blank.
func BuildDraftPrompt(form models.FormData, docType models.DocumentType) string {
	f := form.Normalize()
	value := func(s string) string {
		if s == "" {
			return missingValue
		}
		return s
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "صغ الوثيقة التالية: %s\n\n", docType.Label())
	if guidance, ok := draftGuidance[docType]; ok {
		fmt.Fprintf(&sb, "مضمون الوثيقة:\n%s\n\n", guidance)
	}

	sb.WriteString("بيانات الموكل:\n")
	fmt.Fprintf(&sb, "- الاسم الكامل: %s\n", value(f.Client.FullName))
	fmt.Fprintf(&sb, "- تاريخ الازدياد: %s\n", value(f.Client.DateOfBirth))
	fmt.Fprintf(&sb, "- رقم البطاقة الوطنية: %s\n", value(f.Client.NationalID))
	fmt.Fprintf(&sb, "- العنوان: %s\n", value(f.Client.Address))
	fmt.Fprintf(&sb, "- رقم الحساب البنكي: %s\n\n", value(f.Client.BankAccount))

	sb.WriteString("بيانات القضية:\n")
	fmt.Fprintf(&sb, "- نوع القضية: %s\n", value(f.Case.Type))
	fmt.Fprintf(&sb, "- المراجع: %s\n", value(f.Case.References))
	fmt.Fprintf(&sb, "- الأتعاب: %s\n", value(f.Case.Fees))
	fmt.Fprintf(&sb, "- التسبيق: %s\n", value(f.Case.Advance))
	fmt.Fprintf(&sb, "- المصاريف: %s\n", value(f.Case.Costs))

	return sb.String()
}
