/*
Package operation runs the stages that act on a built plan.

	+-------------+      +---------------+      +-------------------+
	| plan.Build  +----->+ CopyOperation +----->+ AfterBackup       |
	|  (staged)   |      |  (per file)   |      |  (fire and forget)|
	+------+------+      +---------------+      +-------------------+
	       |
	       +------------>  StatusOperation (list only)

🎯 Purpose:
- Copies every staged file into the backup tree, keeping its permissions and
  modification time so the next run sees it as up to date
- Starts the after_backup commands once something was staged
- Lists a plan without touching the filesystem

⚡ A copy failure is reported as a [!] diagnostic and the remaining files are
still copied. Execute only returns an error for problems that stop the whole
stage.

🔄 Operations run one after the other through OperationRunner.
*/
package operation
