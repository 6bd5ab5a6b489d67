// Package prompt holds the fixed instruction prompts sent to chat-style
// vision providers. The dedicated OCR service ignores them.
package prompt

// ExtractText asks for the page text plus segmented problems as strict JSON.
// Providers that answer with prose instead of JSON degrade to the plain-text
// path, so the wording also demands the raw text be complete.
const ExtractText = `이미지에 있는 모든 텍스트를 추출해주세요. 수학 문제 이미지입니다.
규칙:
- 수식은 정확하게 추출 (지수, 분수, 근호 포함)
- 문제 번호와 선택지(①②③④⑤)를 보존
- 결과는 아래 형식의 JSON만 출력. JSON 외 텍스트는 금지.
{
  "text": "추출한 전체 텍스트",
  "confidence": 0.0~1.0,
  "problems": [
    {"number": "1", "content": "문제 내용", "type": "multiple_choice|short_answer|essay", "choices": ["..."]}
  ]
}`

// AnalyzeHandwriting asks for line-level blocks with pixel bounding boxes.
const AnalyzeHandwriting = `손글씨 이미지를 분석해주세요. 학생이 쓴 수학 풀이입니다.
규칙:
- 줄 단위로 텍스트 블록을 추출
- 각 블록의 픽셀 좌표 경계 상자를 추정
- 결과는 아래 형식의 JSON만 출력. JSON 외 텍스트는 금지.
{
  "text": "전체 텍스트",
  "confidence": 0.0~1.0,
  "blocks": [
    {"text": "...", "confidence": 0.0~1.0, "bounding_box": {"x": 0, "y": 0, "width": 0, "height": 0}}
  ]
}`
