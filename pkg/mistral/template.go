package mistral

// Placeholder keys substituted into the request body before sending.
const (
	customerListKey   = "{{ CUSTOMER_LIST }}"
	userPromptKey     = "{{ USER_PROMPT }}"
	currentDateKey    = "{{ CURRENT_DATE }}"
	userPreferenceKey = "{{ USER_PREFERENCE }}"
)

// requestBodyTemplate is the full chat-completions request. The JSON schema
// forces the model to answer with an invoice object the store can persist.
const requestBodyTemplate = `{
"model": "ministral-8b-latest",
"messages": [
{
"role": "system",
"content": "Extract the invoice information to create it. If the date is not specified, use the default date: {{ CURRENT_DATE }} (in format: YYYY-MM-DD)."
},
{
"role": "system",
"content": "The context and preference of the user : {{ USER_PREFERENCE }}"
},
{
"role": "user",
"content": "{{ USER_PROMPT }}"
}
],
"response_format": {
"type": "json_schema",
"json_schema": {
"schema": {
"properties": {
"title": {
"title": "Title",
"type": "string"
},
"customer_id": {
"title": "CustomerID",
"description": "Customer ID. Must be a value of the this list: {{ CUSTOMER_LIST }}",
"type": "string"
},
"date": {
"additionalProperties": false,
"required": ["day", "month", "year"],
"title": "Date of invoice. Current date if not specified.",
"type": "object",
"properties": {
"day": {
"title": "Day",
"description": "Day of month. Example: 01, 15, 31.",
"type": "string"
},
"month": {
"title": "Month",
"description": "Month of year. Example: 01, 06, 12.",
"type": "string"
},
"year": {
"title": "Year",
"description": "Year. Example: 2022.",
"type": "string"
}
}
},
"products": {
"items": {
"properties": {
"description": {
"title": "Description",
"type": "string"
},
"quantity": {
"title": "Quantity",
"description": "Quantity of product in float format. Example: 1.00",
"type": "number"
},
"price": {
"title": "Price",
"description": "Price per unit in float format. Example: 10.00",
"type": "number"
}
},
"additionalProperties": false,
"required": ["description", "quantity", "price"],
"title": "Product",
"type": "object"
},
"title": "Products",
"type": "array"
}
},
"required": ["title", "products", "date", "customer_id"],
"title": "Invoice",
"type": "object",
"additionalProperties": false
},
"name": "invoice",
"strict": true
}
},
"max_tokens": 256,
"temperature": 0
}`
