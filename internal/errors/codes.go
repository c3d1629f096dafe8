package errors

// 錯誤代碼常數
// 格式: CATEGORY_SPECIFIC_DETAIL
// 前端根據這些代碼對應顯示訊息

const (
	// ==================== 認證 (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // 需要登入
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // 用戶名或密碼錯誤
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"       // 登入已過期
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"       // 無效的登入憑證

	// ==================== 驗證 (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // 輸入資料無效
	ValidationRequired     = "VALIDATION_REQUIRED"      // 缺少必填欄位

	// ==================== 資源 (RESOURCE_) ====================
	ResourceNotFound = "RESOURCE_NOT_FOUND" // 找不到資料

	// ==================== 會員申請 (MEMBERSHIP_) ====================
	MembershipNotFound    = "MEMBERSHIP_NOT_FOUND"    // 找不到會員申請
	MembershipInvalidTier = "MEMBERSHIP_INVALID_TIER" // 無效的會員等級

	// ==================== 購物清單 (CART_) ====================
	CartItemNotFound = "CART_ITEM_NOT_FOUND" // 清單內沒有此項目
	CartEmpty        = "CART_EMPTY"          // 清單為空

	// ==================== 上傳 (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE" // 檔案格式不支援
	UploadFileTooLarge    = "UPLOAD_FILE_TOO_LARGE"    // 檔案過大
	UploadInvalidFilename = "UPLOAD_INVALID_FILENAME"  // 檔案名稱不合法
	UploadFailed          = "UPLOAD_FAILED"            // 上傳失敗

	// ==================== 付款 (PAYMENT_) ====================
	PaymentInvalidMethod = "PAYMENT_INVALID_METHOD" // 不支援的付款方式

	// ==================== 內部錯誤 (INTERNAL_) ====================
	InternalServerError = "INTERNAL_SERVER_ERROR" // 伺服器錯誤
	InternalStoreError  = "INTERNAL_STORE_ERROR"  // 資料檔讀寫錯誤
	InternalExternalAPI = "INTERNAL_EXTERNAL_API" // 外部 API 錯誤
)
