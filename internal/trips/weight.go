package trips

// resolveWeightDifference: คำนวณส่วนต่างน้ำหนักถ้ามีการส่งน้ำหนักมาอย่างน้อยหนึ่งค่า
// ส่งมาทั้งคู่ → คำนวณจากค่าที่ส่งมาโดยตรง
// ส่งมาค่าเดียว → อีกฝั่งดึงค่าที่บันทึกไว้เดิมมาคำนวณ
// ไม่ส่งมาเลย → ตอบ nil คือคงค่าเดิมไว้
//
// ข้อควรระวัง: ถ้าชั่งมาแค่ฝั่งเดียวผลลัพธ์อาจติดลบ (อีกฝั่งยังเป็น 0)
// เป็นพฤติกรรมเดิมของระบบ ตั้งใจคงไว้ ไม่ได้แก้
func resolveWeightDifference(newInitial, newFinal *float64, storedInitial, storedFinal float64) *float64 {
	if newInitial == nil && newFinal == nil {
		return nil
	}

	initial := storedInitial
	final := storedFinal
	if newInitial != nil {
		initial = *newInitial
	}
	if newFinal != nil {
		final = *newFinal
	}

	diff := final - initial
	return &diff
}
