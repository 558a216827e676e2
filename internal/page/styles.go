package page

// Shared class lists for page fragments
const (
	Button = "bg-transparent border font-medium focus:outline-none px-4 py-2 focus:ring-4 rounded text-sm text-center hover:text-white inline-flex"

	ButtonPrimary = Button + " hover:bg-violet-500 dark:hover:bg-violet-400 border-violet-600 dark:border-violet-300 focus:ring-violet-400 dark:focus:ring-violet-500 text-violet-600 dark:text-violet-300"
	ButtonSuccess = Button + " hover:bg-green-500 dark:hover:bg-green-400 border-green-600 dark:border-green-300 focus:ring-green-400 dark:focus:ring-green-500 text-green-600 dark:text-green-300"
	ButtonError   = Button + " hover:bg-red-500 dark:hover:bg-red-400 border-red-600 dark:border-red-300 focus:ring-red-400 dark:focus:ring-red-500 text-red-600 dark:text-red-300"

	TableCell = "p-2 border border-slate-300 dark:border-slate-600"
	Dialog    = "p-4 dark:bg-slate-900 dark:text-white rounded border sm:min-w-sm open:flex open:flex-col gap-4 fixed inset-0 z-20"
	Backdrop  = "fixed inset-0 z-10 bg-black/50 backdrop-blur-sm"
	Input     = "rounded invalid:border-red dark:bg-slate-900"
	Checkbox  = "dark:bg-slate-900"
	Link      = "hover:text-violet-500"
	Heading   = "text-xl font-bold"

	body     = "dark:text-white dark:bg-slate-900"
	nav      = "py-4"
	navList  = "flex flex-col gap-4 justify-center items-center sm:flex-row"
	mainArea = "container flex flex-col gap-4 justify-center items-center mx-auto"
)
