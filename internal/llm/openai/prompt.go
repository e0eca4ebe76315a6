package openai

import (
	"strings"

	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/constants"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/llm"
)

// Prompts are written in Vietnamese on purpose: the documents are
// Vietnamese and the model corrects OCR diacritic damage far better when
// instructed in the document language.

const invoiceSystemPrompt = "Bạn là chuyên gia trích xuất thông tin từ hóa đơn. Trả về kết quả dưới dạng JSON chính xác."

const identitySystemPrompt = "Bạn là chuyên gia trích xuất thông tin từ CCCD Việt Nam. Trả về kết quả dưới dạng JSON chính xác với dấu tiếng Việt đúng."

func systemPrompt(dt constants.DocType) string {
	if dt == constants.DocTypeIdentity {
		return identitySystemPrompt
	}
	return invoiceSystemPrompt
}

func userPrompt(req llm.ExtractRequest) string {
	if req.DocType == constants.DocTypeIdentity {
		return identityUserPrompt(req.Texts)
	}
	return invoiceUserPrompt(req.Texts)
}

func invoiceUserPrompt(texts []string) string {
	text := ""
	if len(texts) > 0 {
		text = texts[0]
	}
	var b strings.Builder
	b.WriteString("Bạn là chuyên gia trích xuất thông tin từ hóa đơn. Hãy phân tích text OCR sau đây và trích xuất thông tin theo định dạng JSON.\n\n")
	b.WriteString("Text OCR (có thể có lỗi dấu tiếng Việt do OCR):\n")
	b.WriteString(text)
	b.WriteString(`

Hãy trích xuất các thông tin sau:
1. SỐ HĐ: Số hóa đơn (ví dụ: 00000788)
2. NGÀY: Ngày hóa đơn (format: DD/MM/YYYY)
3. NỘI DUNG: Danh sách hàng hóa/dịch vụ từ bảng "Tên hàng hóa, dịch vụ". Format mỗi dòng: "STT. Tên hàng hóa" (ví dụ: "1. Polyol Greenfoam GM - 101.1 - WB1")
4. ĐƠN VỊ XUẤT: Tên công ty/đơn vị xuất hóa đơn - QUAN TRỌNG: OCR có thể đọc sai dấu tiếng Việt (ví dụ: "TON" -> "TÔN", "THANH" -> "THÀNH", "DAT" -> "ĐẠT"). Bạn phải TỰ ĐỘNG SỬA LẠI dấu tiếng Việt cho đúng dựa trên ngữ cảnh. Ví dụ: "CÔNG TY TNHH TON THÉP THANH DAT" -> "CÔNG TY TNHH TÔN THÉP THÀNH ĐẠT"
5. GIÁ TRỊ SAU THUẾ: Tổng giá trị sau thuế (chỉ số, không có dấu phẩy hoặc chấm)

Trả về JSON với format:
{
    "SỐ HĐ": "00000788",
    "NGÀY": "17/01/2026",
    "NỘI DUNG": "1. Polyol Greenfoam GM - 101.1 - WB1\n2. TẤM NHỰA POLYCARBONATE RỖNG\n3. Tôn lạnh màu\n4. Tôn lạnh màu",
    "ĐƠN VỊ XUẤT": "CÔNG TY TNHH TÔN THÉP THÀNH ĐẠT",
    "GIÁ TRỊ SAU THUẾ": "1000000"
}

LƯU Ý QUAN TRỌNG:
- ĐƠN VỊ XUẤT: OCR thường đọc sai dấu tiếng Việt. Bạn PHẢI tự động sửa lại dựa trên kiến thức tiếng Việt và ngữ cảnh. Ví dụ:
  * "TON" -> "TÔN" (kim loại)
  * "THANH" -> "THÀNH" (thành công, thành phố)
  * "DAT" -> "ĐẠT" (đạt được)
  * "DONG" -> "ĐÔNG" (phía đông)
  * "DONG" -> "ĐỒNG" (tiền, kim loại) - tùy ngữ cảnh
- Luôn sử dụng dấu tiếng Việt CHÍNH XÁC trong tên công ty/đơn vị
- GIÁ TRỊ SAU THUẾ: Chỉ số thuần túy, không có dấu phẩy hoặc chấm

Chỉ trả về JSON, không có text thêm.`)
	return b.String()
}

func identityUserPrompt(texts []string) string {
	front, back := "", ""
	if len(texts) > 0 {
		front = texts[0]
	}
	if len(texts) > 1 {
		back = texts[1]
	}
	var b strings.Builder
	b.WriteString("Bạn là chuyên gia trích xuất thông tin từ CCCD (Căn cước công dân) Việt Nam. Hãy phân tích text OCR sau đây và trích xuất thông tin theo định dạng JSON.\n\n")
	b.WriteString("Text OCR từ CCCD:\nMẶT TRƯỚC:\n")
	b.WriteString(front)
	b.WriteString("\n\nMẶT SAU:\n")
	b.WriteString(back)
	b.WriteString(`

Hãy trích xuất các thông tin sau (PHẢI GIỮ NGUYÊN dấu tiếng Việt và ĐỌC CHÍNH XÁC số):
1. Số CCCD: Số căn cước công dân (12 chữ số) - thường ở định dạng "Số / No.: 080188012880" hoặc tương tự
2. Họ và tên: Họ và tên đầy đủ (GIỮ NGUYÊN dấu tiếng Việt)
3. Ngày sinh: Format DD/MM/YYYY - ĐỌC CHÍNH XÁC từng số, đặc biệt là năm (ví dụ: 01/01/1988 không phải 01/01/1980)
4. Giới tính: Nam hoặc Nữ
5. Quốc tịch: Thường là "Việt Nam" hoặc "Vietnam"
6. Quê quán: Địa chỉ quê quán (GIỮ NGUYÊN dấu tiếng Việt) - LƯU Ý: Giá trị có thể nằm ở DÒNG DƯỚI sau từ khóa "Quê quán / Place of origin:" và có thể trải dài nhiều dòng. GHÉP TẤT CẢ các dòng lại thành một địa chỉ đầy đủ.
7. Nơi thường trú: Địa chỉ thường trú (GIỮ NGUYÊN dấu tiếng Việt) - LƯU Ý: Giá trị có thể BẮT ĐẦU CÙNG DÒNG với từ khóa (sau dấu :) và TIẾP TỤC ở các dòng dưới. GHÉP TẤT CẢ các dòng lại thành một địa chỉ đầy đủ (ví dụ: "637/10/33/30P Hà Huy Giáp, KP2, Thạnh Xuân, Q12, TP. HCM")
8. Ngày cấp: Format DD/MM/YYYY - ĐỌC CHÍNH XÁC từng số
9. Nơi cấp: Tên cơ quan cấp (GIỮ NGUYÊN dấu tiếng Việt)

LƯU Ý QUAN TRỌNG:
- CÁC THÔNG TIN TRÊN CCCD CÓ THỂ KHÔNG THẲNG HÀNG: Tìm từ khóa (ví dụ: "Ngày sinh / Date of birth:") rồi tìm giá trị trong PHẠM VI RỘNG quanh đó, không chỉ trên cùng một dòng.
- Ví dụ: Nếu thấy "Ngày sinh / Date of birth:" nhưng ngày tháng năm ở dòng khác hoặc bị lệch, vẫn phải trích xuất đúng.
- OCR có thể đọc sai dấu tiếng Việt hoặc số. Bạn PHẢI tự động sửa lại dấu và số cho đúng dựa trên ngữ cảnh và kiến thức tiếng Việt/định dạng CCCD.
- Ví dụ sửa dấu: "TON" -> "TÔN", "THANH" -> "THÀNH", "DAT" -> "ĐẠT", "CONG" -> "CÔNG", "DONG" -> "ĐÔNG"
- NGÀY SINH: Đọc CHÍNH XÁC từng chữ số. Nếu thấy "01/01/1988" thì phải là "01/01/1988", KHÔNG phải "01/01/1980" hay "01/01/1990". Kiểm tra kỹ số cuối cùng của năm (ví dụ: 1988 có số 8 cuối, không phải 0).
- Đảm bảo tất cả thông tin địa chỉ, tên đều có dấu tiếng Việt chính xác
- Số CCCD phải là 12 chữ số và chính xác, tìm sau "Số / No.:"

Trả về JSON với format:
{
    "Số CCCD": "001234567890",
    "Họ và tên": "NGUYỄN VĂN A",
    "Ngày sinh": "01/01/1990",
    "Giới tính": "Nam",
    "Quốc tịch": "Việt Nam",
    "Quê quán": "Xã ABC, Huyện XYZ, Tỉnh DEF",
    "Nơi thường trú": "Số 123 Đường ABC, Phường XYZ, Thành phố DEF",
    "Ngày cấp": "01/01/2020",
    "Nơi cấp": "CỤC CẢNH SÁT ĐKQL CƯ TRÚ VÀ DLQG VỀ DÂN CƯ"
}

Chỉ trả về JSON, không có text thêm.`)
	return b.String()
}
